package library

import (
	"sort"
	"strings"
)

// UnclassifiedPriority is the bucket for names no rule matches; unclassified
// sections sort after every recognised one.
const UnclassifiedPriority = 999

type priorityRule struct {
	priority   int
	substrings []string
	exact      []string
}

// priorityTable maps name fragments to display-priority buckets. Rules are
// not mutually exclusive; table order is the tie-break policy and the first
// matching rule wins. "Footer Navigation" therefore classifies as 1 via
// "nav", not 11 via "footer".
var priorityTable = []priorityRule{
	{priority: 1, substrings: []string{"header", "nav"}},
	{priority: 2, substrings: []string{"hero", "banner"}, exact: []string{"home"}},
	{priority: 3, substrings: []string{"feature", "service"}},
	{priority: 4, substrings: []string{"about", "story"}},
	{priority: 5, substrings: []string{"product", "showcase"}},
	{priority: 6, substrings: []string{"pricing", "plan"}},
	{priority: 7, substrings: []string{"testimonial", "review"}},
	{priority: 8, substrings: []string{"team", "staff"}},
	{priority: 9, substrings: []string{"blog", "news"}},
	{priority: 10, substrings: []string{"contact", "support"}},
	{priority: 11, substrings: []string{"footer"}},
}

// Classify maps a freeform section name to its display-priority bucket using
// case-insensitive substring rules in fixed table order. Unmatched names
// resolve to UnclassifiedPriority; classification never fails.
func Classify(name string) int {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, rule := range priorityTable {
		for _, exact := range rule.exact {
			if lower == exact {
				return rule.priority
			}
		}
		for _, fragment := range rule.substrings {
			if strings.Contains(lower, fragment) {
				return rule.priority
			}
		}
	}
	return UnclassifiedPriority
}

// ClassifyItem prefers the structured category metadata already present on a
// library item and falls back to the name-substring heuristic only when the
// metadata yields nothing.
func ClassifyItem(item *Item) int {
	if item == nil {
		return UnclassifiedPriority
	}
	if priority := Classify(item.Subcategory); priority != UnclassifiedPriority {
		return priority
	}
	if priority := Classify(item.Category); priority != UnclassifiedPriority {
		return priority
	}
	return Classify(item.Name)
}

// SortItems returns the items consumable by the given render target, stably
// sorted ascending by classified priority; items in the same bucket keep
// creation order, older first. Items for other targets are excluded, not
// reordered-and-kept. The sort is idempotent: re-sorting its own output is a
// no-op.
func SortItems(items []*Item, target string) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if target != "" && !strings.EqualFold(item.Target, target) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := ClassifyItem(out[i]), ClassifyItem(out[j])
		if pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
