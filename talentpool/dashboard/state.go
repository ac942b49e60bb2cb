package dashboard

import (
	"slices"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// SortOption is one of the two mutually exclusive top-level orderings.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortAvailability SortOption = "availability"
)

// ViewMode selects between the card grid and the table.
type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewTable ViewMode = "table"
)

// FilterState is the complete, immutable filter/search/sort state of the
// dashboard view. Every update goes through Apply so ComputeVisible stays a
// pure function of (candidates, state, interaction).
type FilterState struct {
	SearchTags        []string
	Locations         []kernel.Canton
	Seniorities       []kernel.Seniority
	Languages         []string
	WorkEligibility   []kernel.WorkPermit
	Expertise         []string
	Salary            *kernel.SalaryRange
	SortBy            SortOption
	View              ViewMode
	ShowFavoritesOnly bool

	// Table-view only.
	Columns    ColumnFilters
	ColumnSort *ColumnSort
}

// NewFilterState returns the state of a freshly opened dashboard.
func NewFilterState() FilterState {
	return FilterState{
		SortBy: SortNewest,
		View:   ViewGrid,
	}
}

// Action is one state transition. All updates are expressed as actions so the
// view layer never mutates FilterState fields directly.
type Action interface {
	apply(FilterState) FilterState
}

// Apply returns the state after the action. The receiver is never mutated.
func (s FilterState) Apply(a Action) FilterState {
	return a.apply(s)
}

// Normalized applies the cross-cutting consistency rule: favorites-only mode
// switches itself off once the shortlist empties, so the user is never stuck
// staring at an empty list held open by a stale toggle.
func (s FilterState) Normalized(interaction InteractionState) FilterState {
	if s.ShowFavoritesOnly && len(interaction.Shortlist) == 0 {
		s.ShowFavoritesOnly = false
	}
	return s
}

// ============================================================================
// Actions
// ============================================================================

type AddSearchTag struct{ Tag string }

func (a AddSearchTag) apply(s FilterState) FilterState {
	if a.Tag == "" || slices.Contains(s.SearchTags, a.Tag) {
		return s
	}
	s.SearchTags = append(slices.Clone(s.SearchTags), a.Tag)
	return s
}

type RemoveSearchTag struct{ Tag string }

func (a RemoveSearchTag) apply(s FilterState) FilterState {
	s.SearchTags = removeValue(s.SearchTags, a.Tag)
	return s
}

type ToggleLocation struct{ Canton kernel.Canton }

func (a ToggleLocation) apply(s FilterState) FilterState {
	s.Locations = toggleValue(s.Locations, a.Canton)
	return s
}

type ToggleSeniority struct{ Seniority kernel.Seniority }

func (a ToggleSeniority) apply(s FilterState) FilterState {
	s.Seniorities = toggleValue(s.Seniorities, a.Seniority)
	return s
}

type ToggleLanguage struct{ Language string }

func (a ToggleLanguage) apply(s FilterState) FilterState {
	s.Languages = toggleValue(s.Languages, a.Language)
	return s
}

type ToggleWorkEligibility struct{ Permit kernel.WorkPermit }

func (a ToggleWorkEligibility) apply(s FilterState) FilterState {
	s.WorkEligibility = toggleValue(s.WorkEligibility, a.Permit)
	return s
}

type ToggleExpertise struct{ Expertise string }

func (a ToggleExpertise) apply(s FilterState) FilterState {
	s.Expertise = toggleValue(s.Expertise, a.Expertise)
	return s
}

// SetSalaryFilter replaces the salary range; a nil range clears it.
type SetSalaryFilter struct{ Range *kernel.SalaryRange }

func (a SetSalaryFilter) apply(s FilterState) FilterState {
	if a.Range == nil {
		s.Salary = nil
		return s
	}
	r := *a.Range
	s.Salary = &r
	return s
}

type SetSort struct{ Sort SortOption }

func (a SetSort) apply(s FilterState) FilterState {
	s.SortBy = a.Sort
	return s
}

type SetViewMode struct{ View ViewMode }

func (a SetViewMode) apply(s FilterState) FilterState {
	s.View = a.View
	return s
}

type SetShowFavoritesOnly struct{ Enabled bool }

func (a SetShowFavoritesOnly) apply(s FilterState) FilterState {
	s.ShowFavoritesOnly = a.Enabled
	return s
}

// SetColumnText sets (or clears, with an empty query) a free-text column
// filter in the table view.
type SetColumnText struct {
	Column ColumnKey
	Query  string
}

func (a SetColumnText) apply(s FilterState) FilterState {
	s.Columns = s.Columns.withText(a.Column, a.Query)
	return s
}

// ToggleColumnValue toggles one value of a multi-select column filter.
type ToggleColumnValue struct {
	Column ColumnKey
	Value  string
}

func (a ToggleColumnValue) apply(s FilterState) FilterState {
	s.Columns = s.Columns.withToggledValue(a.Column, a.Value)
	return s
}

// ClickColumn cycles a table column sort: first click sorts ascending, a
// second click on the same column flips to descending. While set, the column
// sort replaces the top-level sort entirely for the table's row order.
type ClickColumn struct{ Column ColumnKey }

func (a ClickColumn) apply(s FilterState) FilterState {
	if s.ColumnSort != nil && s.ColumnSort.Column == a.Column {
		s.ColumnSort = &ColumnSort{Column: a.Column, Descending: !s.ColumnSort.Descending}
		return s
	}
	s.ColumnSort = &ColumnSort{Column: a.Column}
	return s
}

// ClearFilters resets everything except the view mode, matching the explicit
// "clear filters" affordance.
type ClearFilters struct{}

func (a ClearFilters) apply(s FilterState) FilterState {
	next := NewFilterState()
	next.View = s.View
	return next
}

// ============================================================================
// Helpers
// ============================================================================

func toggleValue[T comparable](values []T, v T) []T {
	if slices.Contains(values, v) {
		return removeValue(values, v)
	}
	return append(slices.Clone(values), v)
}

func removeValue[T comparable](values []T, v T) []T {
	out := make([]T, 0, len(values))
	for _, existing := range values {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}
