package dashboard

import (
	"slices"
	"sort"
	"strings"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
)

// ComputeVisible applies the current filter/search/sort state to the fetched
// candidate set and returns the visible, ordered subset. It is pure: the same
// inputs always produce the same output, nothing is mutated, and no candidate
// is ever fabricated. An empty result is a valid outcome, not an error.
func ComputeVisible(candidates []candidate.Candidate, state FilterState, interaction InteractionState) []candidate.Candidate {
	visible := make([]candidate.Candidate, 0, len(candidates))
	for i := range candidates {
		if passesFilters(&candidates[i], state, interaction) {
			visible = append(visible, candidates[i])
		}
	}

	sortVisible(visible, state)
	return visible
}

// passesFilters evaluates every filter stage conjunctively.
func passesFilters(c *candidate.Candidate, state FilterState, interaction InteractionState) bool {
	// Search: every tag must match at least one field.
	if len(state.SearchTags) > 0 {
		fields := c.SearchFields()
		for _, tag := range state.SearchTags {
			if !matchesAnyField(tag, fields) {
				return false
			}
		}
	}

	// Location: any selected canton.
	if len(state.Locations) > 0 && !intersects(c.Cantons, state.Locations) {
		return false
	}

	// Seniority: any selected tier.
	if len(state.Seniorities) > 0 && !slices.Contains(state.Seniorities, c.Seniority) {
		return false
	}

	// Language: ALL selected languages must be present (see package doc).
	for _, lang := range state.Languages {
		if !containsFold(c.Languages, lang) {
			return false
		}
	}

	// Work eligibility: any selected permit.
	if len(state.WorkEligibility) > 0 && !slices.Contains(state.WorkEligibility, c.WorkPermit) {
		return false
	}

	// Expertise: any selected tag.
	if len(state.Expertise) > 0 && !intersectsFold(c.FunctionalExpertise, state.Expertise) {
		return false
	}

	// Salary: interval overlap, with missing candidate data passing anything.
	if state.Salary != nil && !c.Salary.Overlaps(*state.Salary) {
		return false
	}

	// Favorites.
	if state.ShowFavoritesOnly && !interaction.IsShortlisted(c.ID) {
		return false
	}

	// Table-view column filters stack on top of everything above.
	if state.View == ViewTable && !matchesColumnFilters(c, state.Columns) {
		return false
	}

	return true
}

// sortVisible orders the slice in place. An active table column sort replaces
// the top-level sort entirely; the two are never combined.
func sortVisible(visible []candidate.Candidate, state FilterState) {
	if state.View == ViewTable && state.ColumnSort != nil {
		sortByColumn(visible, *state.ColumnSort)
		return
	}

	switch state.SortBy {
	case SortAvailability:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].AvailabilityScore() < visible[j].AvailabilityScore()
		})
	default: // SortNewest — descending by the true timestamp, never the display string
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].EntryDate.After(visible[j].EntryDate)
		})
	}
}

func intersects(have []kernel.Canton, want []kernel.Canton) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

func intersectsFold(have []string, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsFold(values []string, v string) bool {
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return true
		}
	}
	return false
}
