package candidate

import (
	"regexp"
	"strings"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// PreviousRole is one entry of a candidate's anonymized work history.
type PreviousRole struct {
	Role     string `json:"role"`
	Duration string `json:"duration"`
	Location string `json:"location,omitempty"`
}

// Candidate is the anonymized talent record shown to company users. It is
// immutable for the lifetime of a dashboard session; all mutation happens
// upstream in the profile pipeline.
type Candidate struct {
	ID           kernel.CandidateID `db:"id" json:"id"`
	Role         string             `db:"role" json:"role"`
	Skills       []string           `db:"skills" json:"skills"`
	Experience   string             `db:"experience" json:"experience"`
	Seniority    kernel.Seniority   `db:"seniority" json:"seniority"`
	Cantons      []kernel.Canton    `db:"cantons" json:"cantons"`
	Salary       kernel.SalaryRange `json:"salary"`
	Availability string             `db:"availability" json:"availability"`

	// EntryDate is the sortable truth; EntryDateDisplay is what cards render.
	// Sorting must never fall back to the display string.
	EntryDate        time.Time `db:"entry_date" json:"entryDate"`
	EntryDateDisplay string    `db:"entry_date_display" json:"entryDateDisplay"`

	// Optional enrichment, absent for thin profiles.
	Highlight           string            `db:"highlight" json:"highlight,omitempty"`
	FunctionalExpertise []string          `db:"functional_expertise" json:"functionalExpertise,omitempty"`
	Education           string            `db:"education" json:"education,omitempty"`
	WorkPermit          kernel.WorkPermit `db:"work_permit" json:"workPermit,omitempty"`
	Languages           []string          `db:"languages" json:"languages,omitempty"`
	ProfileBio          string            `db:"profile_bio" json:"profileBio,omitempty"`
	Summary             string            `db:"summary" json:"summary,omitempty"`
	PreviousRoles       []PreviousRole    `json:"previousRoles,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasSalaryData reports whether the candidate stated salary expectations.
func (c *Candidate) HasSalaryData() bool {
	return !c.Salary.IsUnspecified()
}

// SearchFields returns every text fragment a free-text search tag is matched
// against. One field matching is enough for the tag to pass.
func (c *Candidate) SearchFields() []string {
	fields := []string{
		c.Role,
		c.ID.String(),
	}
	fields = append(fields, c.Skills...)
	fields = append(fields, c.Highlight)
	fields = append(fields, c.FunctionalExpertise...)
	fields = append(fields,
		c.Education,
		c.Experience,
		string(c.Seniority),
		string(c.WorkPermit),
	)
	fields = append(fields, c.Languages...)
	for _, canton := range c.Cantons {
		fields = append(fields, string(canton))
	}
	fields = append(fields,
		c.Availability,
		c.Salary.Format(),
		c.ProfileBio,
		c.Summary,
	)
	for _, prev := range c.PreviousRoles {
		fields = append(fields, prev.Role, prev.Duration, prev.Location)
	}
	fields = append(fields, c.EntryDateDisplay)
	return fields
}

var monthCountPattern = regexp.MustCompile(`(\d+)\s*month`)

// AvailabilityScore derives the urgency rank used by the availability sort:
// immediate starts sort first (0), a stated notice period sorts by its month
// count, "negotiable" near the end (99), and anything unparseable last (100).
// Malformed text never errors; it just sorts last.
func (c *Candidate) AvailabilityScore() int {
	text := strings.ToLower(strings.TrimSpace(c.Availability))
	switch {
	case text == "":
		return 100
	case strings.Contains(text, "immediate"):
		return 0
	case strings.Contains(text, "negotiable"):
		return 99
	}
	if m := monthCountPattern.FindStringSubmatch(text); m != nil {
		months := 0
		for _, d := range m[1] {
			months = months*10 + int(d-'0')
		}
		return months
	}
	return 100
}
