package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
)

// ColumnKey identifies one table column.
type ColumnKey string

const (
	ColumnRole         ColumnKey = "role"
	ColumnSkills       ColumnKey = "skills"
	ColumnExperience   ColumnKey = "experience"
	ColumnSeniority    ColumnKey = "seniority"
	ColumnLocation     ColumnKey = "location"
	ColumnSalary       ColumnKey = "salary"
	ColumnAvailability ColumnKey = "availability"
	ColumnLanguages    ColumnKey = "languages"
	ColumnEligibility  ColumnKey = "eligibility"
	ColumnEntryDate    ColumnKey = "entryDate"
)

// ColumnSort is an active column-click sort. While set it overrides the
// top-level sort for the table's row order.
type ColumnSort struct {
	Column     ColumnKey
	Descending bool
}

// ColumnFilters holds the table view's per-column filters. Free-text columns
// reuse the boundary-aware tag matcher; multi-select columns (location,
// eligibility, languages) are always any-of, regardless of the sidebar's
// per-field semantics (see package doc).
type ColumnFilters struct {
	Text        map[ColumnKey]string
	MultiSelect map[ColumnKey][]string
}

func (f ColumnFilters) withText(column ColumnKey, query string) ColumnFilters {
	text := make(map[ColumnKey]string, len(f.Text)+1)
	for k, v := range f.Text {
		text[k] = v
	}
	if query == "" {
		delete(text, column)
	} else {
		text[column] = query
	}
	f.Text = text
	return f
}

func (f ColumnFilters) withToggledValue(column ColumnKey, value string) ColumnFilters {
	multi := make(map[ColumnKey][]string, len(f.MultiSelect)+1)
	for k, v := range f.MultiSelect {
		multi[k] = v
	}
	multi[column] = toggleValue(multi[column], value)
	if len(multi[column]) == 0 {
		delete(multi, column)
	}
	f.MultiSelect = multi
	return f
}

// matchesColumnFilters evaluates every column filter conjunctively.
func matchesColumnFilters(c *candidate.Candidate, filters ColumnFilters) bool {
	for column, query := range filters.Text {
		if !matchesColumnText(c, column, query) {
			return false
		}
	}
	for column, selected := range filters.MultiSelect {
		if len(selected) > 0 && !intersectsFold(columnValues(c, column), selected) {
			return false
		}
	}
	return true
}

func matchesColumnText(c *candidate.Candidate, column ColumnKey, query string) bool {
	if column == ColumnSalary {
		return matchesSalaryColumn(c, query)
	}
	return matchesAnyField(query, columnValues(c, column))
}

// matchesSalaryColumn first tries the shorthand range syntax ("min-max",
// "-max", "min-", or a bare number read as a minimum bound) and applies
// interval-overlap semantics; anything that does not parse as a range falls
// back to substring search over the formatted salary string.
func matchesSalaryColumn(c *candidate.Candidate, query string) bool {
	if r, ok := parseSalaryShorthand(query); ok {
		return c.Salary.Overlaps(r)
	}
	return matchesAnyField(query, []string{c.Salary.Format()})
}

// parseSalaryShorthand parses the table's salary filter syntax.
func parseSalaryShorthand(query string) (kernel.SalaryRange, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return kernel.SalaryRange{}, false
	}

	if n, err := strconv.Atoi(q); err == nil && n > 0 {
		return kernel.SalaryRange{Min: n}, true
	}

	before, after, found := strings.Cut(q, "-")
	if !found {
		return kernel.SalaryRange{}, false
	}

	var r kernel.SalaryRange
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)

	if before != "" {
		n, err := strconv.Atoi(before)
		if err != nil || n < 0 {
			return kernel.SalaryRange{}, false
		}
		r.Min = n
	}
	if after != "" {
		n, err := strconv.Atoi(after)
		if err != nil || n < 0 {
			return kernel.SalaryRange{}, false
		}
		r.Max = n
	}

	if before == "" && after == "" {
		return kernel.SalaryRange{}, false
	}
	return r, true
}

// columnValues returns the text fragments a column filter matches against.
func columnValues(c *candidate.Candidate, column ColumnKey) []string {
	switch column {
	case ColumnRole:
		return []string{c.Role}
	case ColumnSkills:
		return c.Skills
	case ColumnExperience:
		return []string{c.Experience}
	case ColumnSeniority:
		return []string{string(c.Seniority)}
	case ColumnLocation:
		values := make([]string, 0, len(c.Cantons))
		for _, canton := range c.Cantons {
			values = append(values, string(canton))
		}
		return values
	case ColumnSalary:
		return []string{c.Salary.Format()}
	case ColumnAvailability:
		return []string{c.Availability}
	case ColumnLanguages:
		return c.Languages
	case ColumnEligibility:
		return []string{string(c.WorkPermit)}
	case ColumnEntryDate:
		return []string{c.EntryDateDisplay}
	default:
		return nil
	}
}

// sortByColumn orders the slice by one column, ascending unless flipped.
func sortByColumn(visible []candidate.Candidate, cs ColumnSort) {
	less := columnLess(cs.Column)
	sort.SliceStable(visible, func(i, j int) bool {
		if cs.Descending {
			return less(&visible[j], &visible[i])
		}
		return less(&visible[i], &visible[j])
	})
}

func columnLess(column ColumnKey) func(a, b *candidate.Candidate) bool {
	switch column {
	case ColumnExperience:
		return func(a, b *candidate.Candidate) bool {
			return leadingInt(a.Experience) < leadingInt(b.Experience)
		}
	case ColumnSalary:
		return func(a, b *candidate.Candidate) bool {
			return a.Salary.Min < b.Salary.Min
		}
	case ColumnAvailability:
		return func(a, b *candidate.Candidate) bool {
			return a.AvailabilityScore() < b.AvailabilityScore()
		}
	case ColumnEntryDate:
		return func(a, b *candidate.Candidate) bool {
			return a.EntryDate.Before(b.EntryDate)
		}
	default:
		return func(a, b *candidate.Candidate) bool {
			return strings.ToLower(strings.Join(columnValues(a, column), " ")) <
				strings.ToLower(strings.Join(columnValues(b, column), " "))
		}
	}
}

// leadingInt extracts the integer prefix of a free-text numeric field.
// Unparseable text sorts as 0 rather than erroring; one bad record must not
// break the table.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
