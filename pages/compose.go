package pages

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/justcodeworks/go-pagebuilder/templates"
)

// Composer implements the page composition operations. Every operation is
// synchronous, performs no I/O, and is pure with respect to its page input:
// the argument is never mutated and a new page value is returned. Persisting
// the result is the caller's responsibility.
//
// Order invariant: after any operation completes, sorting the page's
// sections by Order yields the values 0..n-1 with no gaps or duplicates.
type Composer struct {
	now func() time.Time
	id  IDGenerator
}

// IDGenerator produces identifiers for new page sections.
type IDGenerator func() uuid.UUID

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) ComposerOption {
	return func(c *Composer) {
		if clock != nil {
			c.now = clock
		}
	}
}

// WithIDGenerator overrides section id generation.
func WithIDGenerator(generator IDGenerator) ComposerOption {
	return func(c *Composer) {
		if generator != nil {
			c.id = generator
		}
	}
}

// NewComposer constructs a composer with real clock and random ids.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{
		now: time.Now,
		id:  uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddSection instantiates a section from a resolved template and appends it.
// The new section receives Order equal to the current section count; existing
// order values are preserved unchanged. Content and settings are deep copies:
// the template is a seed, not a live binding.
func (c *Composer) AddSection(page *EditablePage, template *templates.SectionTemplate, businessType, locale string) (*EditablePage, error) {
	if page == nil {
		return nil, ErrPageRequired
	}
	if template == nil {
		return nil, ErrTemplateRequired
	}

	resolved := template.ResolveForBusinessType(businessType)
	now := c.now()

	section := &PageSection{
		ID:          c.id(),
		PageID:      page.ID,
		TemplateID:  template.ID,
		SectionType: template.SectionType,
		Title:       template.DisplayNameFor(businessType, locale),
		Content:     resolved.DefaultContent.Clone(),
		Settings:    resolved.DefaultSettings,
		Order:       len(page.Sections),
		IsVisible:   true,
		IsEditable:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	updated := page.Clone()
	updated.Sections = append(updated.Sections, section)
	updated.UpdatedAt = now
	return updated, nil
}

// UpdateSection merges the patch onto the matching section and refreshes its
// UpdatedAt. A missing section id is an error.
func (c *Composer) UpdateSection(page *EditablePage, sectionID uuid.UUID, patch SectionPatch) (*EditablePage, error) {
	if page == nil {
		return nil, ErrPageRequired
	}

	updated := page.Clone()
	section := updated.Section(sectionID)
	if section == nil {
		return nil, &SectionNotFoundError{PageID: page.ID, SectionID: sectionID}
	}

	if patch.Title != nil {
		section.Title = *patch.Title
	}
	if patch.Content != nil {
		section.Content = patch.Content.Clone()
	}
	if patch.Settings != nil {
		section.Settings = *patch.Settings
	}
	if patch.IsVisible != nil {
		section.IsVisible = *patch.IsVisible
	}
	if patch.IsEditable != nil {
		section.IsEditable = *patch.IsEditable
	}

	now := c.now()
	section.UpdatedAt = now
	updated.UpdatedAt = now
	return updated, nil
}

// DeleteSection removes the section and renumbers the remaining sections'
// Order to be contiguous from 0, preserving relative order.
func (c *Composer) DeleteSection(page *EditablePage, sectionID uuid.UUID) (*EditablePage, error) {
	if page == nil {
		return nil, ErrPageRequired
	}
	if page.Section(sectionID) == nil {
		return nil, &SectionNotFoundError{PageID: page.ID, SectionID: sectionID}
	}

	updated := page.Clone()
	kept := make([]*PageSection, 0, len(updated.Sections)-1)
	for _, section := range updated.Sections {
		if section.ID == sectionID {
			continue
		}
		kept = append(kept, section)
	}
	sortByOrder(kept)
	for idx, section := range kept {
		section.Order = idx
	}
	updated.Sections = kept
	updated.UpdatedAt = c.now()
	return updated, nil
}

// MoveSectionUp swaps Order with the preceding section by current order. The
// first section is a no-op, not an error.
func (c *Composer) MoveSectionUp(page *EditablePage, sectionID uuid.UUID) (*EditablePage, error) {
	return c.move(page, sectionID, -1)
}

// MoveSectionDown swaps Order with the following section by current order.
// The last section is a no-op, not an error.
func (c *Composer) MoveSectionDown(page *EditablePage, sectionID uuid.UUID) (*EditablePage, error) {
	return c.move(page, sectionID, +1)
}

func (c *Composer) move(page *EditablePage, sectionID uuid.UUID, delta int) (*EditablePage, error) {
	if page == nil {
		return nil, ErrPageRequired
	}

	updated := page.Clone()
	section := updated.Section(sectionID)
	if section == nil {
		return nil, &SectionNotFoundError{PageID: page.ID, SectionID: sectionID}
	}

	var neighbour *PageSection
	for _, candidate := range updated.Sections {
		if candidate.ID != section.ID && candidate.Order == section.Order+delta {
			neighbour = candidate
			break
		}
	}
	if neighbour == nil {
		return updated, nil
	}

	section.Order, neighbour.Order = neighbour.Order, section.Order
	now := c.now()
	section.UpdatedAt = now
	neighbour.UpdatedAt = now
	updated.UpdatedAt = now
	return updated, nil
}

// SetSectionContent writes the content for one locale of one section. Other
// locales and other sections are untouched; a locale never edited keeps the
// content inherited at creation time.
func (c *Composer) SetSectionContent(page *EditablePage, sectionID uuid.UUID, locale string, content templates.Content) (*EditablePage, error) {
	if page == nil {
		return nil, ErrPageRequired
	}
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	updated := page.Clone()
	section := updated.Section(sectionID)
	if section == nil {
		return nil, &SectionNotFoundError{PageID: page.ID, SectionID: sectionID}
	}

	if section.Content == nil {
		section.Content = templates.LocaleContent{}
	}
	section.Content[locale] = content.Clone()

	now := c.now()
	section.UpdatedAt = now
	updated.UpdatedAt = now
	return updated, nil
}

// SortedSections returns the page's sections ordered by their Order field.
func SortedSections(page *EditablePage) []*PageSection {
	if page == nil {
		return nil
	}
	out := make([]*PageSection, len(page.Sections))
	copy(out, page.Sections)
	sortByOrder(out)
	return out
}

func sortByOrder(sections []*PageSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}
