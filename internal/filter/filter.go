// Package filter narrows logged drinks by name, category and origin.
package filter

import (
	"strings"

	"github.com/xolan/sip/internal/entry"
)

// Origin restricts entries by whether they came from the catalog
type Origin int

const (
	AnyOrigin Origin = iota
	CatalogOnly
	CustomOnly
)

// Filter represents filtering criteria for logged drinks.
// All fields are optional; empty values match all entries.
type Filter struct {
	Keyword    string   // Case-insensitive substring of the drink name
	Categories []string // Any listed category matches (OR logic, case-insensitive)
	Origin     Origin
}

// NewFilter creates a new Filter with the given criteria.
func NewFilter(keyword string, categories []string, origin Origin) *Filter {
	return &Filter{
		Keyword:    strings.TrimSpace(keyword),
		Categories: categories,
		Origin:     origin,
	}
}

// IsEmpty returns true if the filter matches every entry
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && len(f.Categories) == 0 && f.Origin == AnyOrigin
}

// FilterEntries returns the entries that match f, in their original order.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the drink name
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Keyword))
}

// MatchesCategory returns true if the entry's category is one of the filter categories
func (f *Filter) MatchesCategory(e entry.Entry) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if strings.EqualFold(strings.TrimSpace(c), e.Category) {
			return true
		}
	}
	return false
}

// MatchesOrigin returns true if the entry came from where the filter asks
func (f *Filter) MatchesOrigin(e entry.Entry) bool {
	switch f.Origin {
	case CatalogOnly:
		return !e.IsCustomName
	case CustomOnly:
		return e.IsCustomName
	default:
		return true
	}
}

// Matches returns true if the entry passes every criterion
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesKeyword(e) && f.MatchesCategory(e) && f.MatchesOrigin(e)
}
