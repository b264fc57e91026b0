// Package selectors holds the local search and filter state for each
// catalog the wizard offers a choice from
package selectors

import (
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
)

// FilterAll is accepted by every selector and matches every record
const FilterAll = "all"

// Record is the shape every catalog entry shares
type Record interface {
	comparable
	GetID() string
}

// Filter is one of a catalog's mutually exclusive category filters
type Filter[T Record] struct {
	Name string
	// RequiresValue rejects SetFilter calls that omit a value
	RequiresValue bool
	Match         func(item T, value string) bool
}

// Config describes a selector over one catalog
type Config[T Record] struct {
	Candidates []T
	Selected   T
	OnSelect   func(T)
	Loading    bool

	// Name and Fields feed search and suggestions
	Name    func(T) string
	Fields  func(T) []string
	Filters []Filter[T]
}

// Selector tracks the search text and active filter for one catalog. It is
// not safe for concurrent use.
type Selector[T Record] struct {
	candidates []T
	selected   T
	onSelect   func(T)
	loading    bool

	name    func(T) string
	fields  func(T) []string
	filters map[string]Filter[T]
	order   []string

	search      string
	filter      string
	filterValue string
}

// New builds a selector. Nil entries in the candidate list are dropped.
func New[T Record](cfg Config[T]) *Selector[T] {
	var zero T
	candidates := make([]T, 0, len(cfg.Candidates))
	for _, c := range cfg.Candidates {
		if c == zero || c.GetID() == "" {
			continue
		}
		candidates = append(candidates, c)
	}

	s := &Selector[T]{
		candidates: candidates,
		selected:   cfg.Selected,
		onSelect:   cfg.OnSelect,
		loading:    cfg.Loading,
		name:       cfg.Name,
		fields:     cfg.Fields,
		filters:    make(map[string]Filter[T], len(cfg.Filters)),
		order:      []string{FilterAll},
		filter:     FilterAll,
	}
	if s.name == nil {
		s.name = func(item T) string { return item.GetID() }
	}
	for _, f := range cfg.Filters {
		if f.Name == FilterAll || f.Match == nil {
			continue
		}
		if _, dup := s.filters[f.Name]; !dup {
			s.order = append(s.order, f.Name)
		}
		s.filters[f.Name] = f
	}
	return s
}

// SetSearch replaces the search text
func (s *Selector[T]) SetSearch(text string) {
	s.search = text
}

// SetFilter makes category the active filter, replacing any other
func (s *Selector[T]) SetFilter(category, value string) error {
	if category == "" || category == FilterAll {
		s.filter, s.filterValue = FilterAll, ""
		return nil
	}

	f, ok := s.filters[category]
	if !ok {
		return errors.InvalidArgumentf("unknown filter %q, expected one of %v", category, s.order)
	}
	if f.RequiresValue && value == "" {
		return errors.InvalidArgumentf("filter %q requires a value", category)
	}

	s.filter, s.filterValue = category, value
	return nil
}

// ClearFilters resets the search text and the active filter
func (s *Selector[T]) ClearFilters() {
	s.search = ""
	s.filter = FilterAll
	s.filterValue = ""
}

// Filters lists the categories this selector accepts
func (s *Selector[T]) Filters() []string {
	return append([]string(nil), s.order...)
}

// ActiveFilter returns the current category and its value
func (s *Selector[T]) ActiveFilter() (string, string) {
	return s.filter, s.filterValue
}

// Search returns the current search text
func (s *Selector[T]) Search() string {
	return s.search
}

// Loading reports whether the candidate list is still being fetched
func (s *Selector[T]) Loading() bool {
	return s.loading
}

// Selected returns the currently selected record, if any
func (s *Selector[T]) Selected() T {
	return s.selected
}

// Results applies the active filter then the search text
func (s *Selector[T]) Results() []T {
	out := make([]T, 0, len(s.candidates))
	f, filtered := s.filters[s.filter]
	for _, item := range s.candidates {
		if filtered && !f.Match(item, s.filterValue) {
			continue
		}
		if !s.matches(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *Selector[T]) matches(item T) bool {
	fields := []string{s.name(item)}
	if s.fields != nil {
		fields = append(fields, s.fields(item)...)
	}
	return textsearch.AnyContains(s.search, fields...)
}

// Select looks id up among all candidates, ignoring search and filter, and
// hands the full record to the selection callback
func (s *Selector[T]) Select(id string) (T, error) {
	for _, item := range s.candidates {
		if item.GetID() != id {
			continue
		}
		s.selected = item
		if s.onSelect != nil {
			s.onSelect(item)
		}
		return item, nil
	}

	var zero T
	return zero, errors.NotFoundf("no option with id %q", id)
}

// Suggest returns candidate names close to text, nearest first
func (s *Selector[T]) Suggest(text string) []string {
	names := make([]string, 0, len(s.candidates))
	for _, item := range s.candidates {
		names = append(names, s.name(item))
	}
	return Suggest(text, names)
}

// View is a serializable picture of a selector
type View[T Record] struct {
	Search      string   `json:"search"`
	Filter      string   `json:"filter"`
	FilterValue string   `json:"filter_value,omitempty"`
	Filters     []string `json:"filters"`
	Loading     bool     `json:"loading"`
	SelectedID  string   `json:"selected_id,omitempty"`
	Results     []T      `json:"results"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// View snapshots the selector. Suggestions are only offered when a search
// finds nothing.
func (s *Selector[T]) View() View[T] {
	v := View[T]{
		Search:      s.search,
		Filter:      s.filter,
		FilterValue: s.filterValue,
		Filters:     s.Filters(),
		Loading:     s.loading,
		SelectedID:  s.selected.GetID(),
		Results:     s.Results(),
	}
	if len(v.Results) == 0 && textsearch.Fold(s.search) != "" {
		v.Suggestions = s.Suggest(s.search)
	}
	return v
}
