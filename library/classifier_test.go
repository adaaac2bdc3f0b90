package library_test

import (
	"testing"
	"time"

	"github.com/justcodeworks/go-pagebuilder/library"
)

func TestClassifyTableOrder(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Main Header", 1},
		{"Navigation Bar", 1},
		{"Hero Banner", 2},
		{"home", 2},
		{"Service Grid", 3},
		{"Feature List", 3},
		{"About Our Story", 4},
		{"Product Showcase", 5},
		{"Pricing Plans", 6},
		{"Customer Reviews", 7},
		{"Team Staff", 8},
		{"Blog Feed", 9},
		{"Contact Form", 10},
		{"Footer", 11},
		{"Mystery Section", library.UnclassifiedPriority},
		{"", library.UnclassifiedPriority},
	}
	for _, tc := range cases {
		if got := library.Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "nav" matches before "footer" does; precedence is table order, not
	// specificity.
	if got := library.Classify("Footer Navigation"); got != 1 {
		t.Fatalf("Classify(Footer Navigation) = %d, want 1", got)
	}
}

func TestClassifyHomeIsExact(t *testing.T) {
	if got := library.Classify("homepage"); got == 2 {
		t.Fatal("expected \"homepage\" not to match the exact \"home\" rule")
	}
}

func TestClassifyItemPrefersStructuredMetadata(t *testing.T) {
	item := &library.Item{Name: "Footer Navigation", Subcategory: "pricing"}
	if got := library.ClassifyItem(item); got != 6 {
		t.Fatalf("expected subcategory classification 6, got %d", got)
	}

	item = &library.Item{Name: "Footer Navigation", Category: "about"}
	if got := library.ClassifyItem(item); got != 4 {
		t.Fatalf("expected category classification 4, got %d", got)
	}

	item = &library.Item{Name: "Footer Navigation"}
	if got := library.ClassifyItem(item); got != 1 {
		t.Fatalf("expected name fallback classification 1, got %d", got)
	}
}

func TestSortItemsStableAndIdempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []*library.Item{
		{Name: "Footer", Target: library.TargetNextJS, CreatedAt: base},
		{Name: "Hero Banner", Target: library.TargetNextJS, CreatedAt: base.Add(time.Minute)},
		{Name: "Second Hero", Target: library.TargetNextJS, CreatedAt: base.Add(2 * time.Minute)},
		{Name: "Django Thing", Target: library.TargetDjango, CreatedAt: base},
	}

	sorted := library.SortItems(items, library.TargetNextJS)
	if len(sorted) != 3 {
		t.Fatalf("expected Django item filtered out, got %d items", len(sorted))
	}
	if sorted[0].Name != "Hero Banner" || sorted[1].Name != "Second Hero" || sorted[2].Name != "Footer" {
		t.Fatalf("unexpected order: %s, %s, %s", sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}

	again := library.SortItems(sorted, library.TargetNextJS)
	for i := range sorted {
		if again[i].Name != sorted[i].Name {
			t.Fatalf("re-sort changed order at %d: %s vs %s", i, again[i].Name, sorted[i].Name)
		}
	}
}
