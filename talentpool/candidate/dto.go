package candidate

import (
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// Payload is the loosely-typed wire shape of a candidate record as the data
// provider emits it: every field beyond the id may be missing. Normalize turns
// it into the strict Candidate shape so downstream code never has to guess
// about absence versus zero.
type Payload struct {
	ID                  string             `json:"id"`
	Role                string             `json:"role,omitempty"`
	Skills              []string           `json:"skills,omitempty"`
	Experience          string             `json:"experience,omitempty"`
	Seniority           string             `json:"seniority,omitempty"`
	Cantons             []string           `json:"cantons,omitempty"`
	SalaryMin           *int               `json:"salaryMin,omitempty"`
	SalaryMax           *int               `json:"salaryMax,omitempty"`
	Availability        string             `json:"availability,omitempty"`
	EntryDate           string             `json:"entryDate,omitempty"`
	EntryDateDisplay    string             `json:"entryDateDisplay,omitempty"`
	Highlight           string             `json:"highlight,omitempty"`
	FunctionalExpertise []string           `json:"functionalExpertise,omitempty"`
	Education           string             `json:"education,omitempty"`
	WorkPermit          string             `json:"workPermit,omitempty"`
	Languages           []string           `json:"languages,omitempty"`
	ProfileBio          string             `json:"profileBio,omitempty"`
	Summary             string             `json:"summary,omitempty"`
	PreviousRoles       []PreviousRole     `json:"previousRoles,omitempty"`
}

// ListResponse is the body of GET /api/candidates.
type ListResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Normalize applies the defaulting rules at the fetch boundary: missing salary
// becomes the 0/0 "unspecified" range, missing seniority becomes the explicit
// "Not specified" label, nil slices become empty ones, and a bad entry date
// degrades to the zero time instead of failing the whole record.
func Normalize(p Payload) Candidate {
	c := Candidate{
		ID:                  kernel.NewCandidateID(p.ID),
		Role:                p.Role,
		Skills:              emptyIfNil(p.Skills),
		Experience:          p.Experience,
		Seniority:           kernel.Seniority(p.Seniority),
		Availability:        p.Availability,
		EntryDateDisplay:    p.EntryDateDisplay,
		Highlight:           p.Highlight,
		FunctionalExpertise: emptyIfNil(p.FunctionalExpertise),
		Education:           p.Education,
		WorkPermit:          kernel.WorkPermit(p.WorkPermit),
		Languages:           emptyIfNil(p.Languages),
		ProfileBio:          p.ProfileBio,
		Summary:             p.Summary,
		PreviousRoles:       p.PreviousRoles,
	}

	if !c.Seniority.IsKnown() || p.Seniority == "" {
		c.Seniority = kernel.SeniorityNotSpecified
	}

	c.Cantons = make([]kernel.Canton, 0, len(p.Cantons))
	for _, code := range p.Cantons {
		c.Cantons = append(c.Cantons, kernel.Canton(code))
	}

	if p.SalaryMin != nil && *p.SalaryMin > 0 {
		c.Salary.Min = *p.SalaryMin
	}
	if p.SalaryMax != nil && *p.SalaryMax > 0 {
		c.Salary.Max = *p.SalaryMax
	}

	if p.EntryDate != "" {
		if t, err := time.Parse(time.RFC3339, p.EntryDate); err == nil {
			c.EntryDate = t
		}
	}
	if c.EntryDateDisplay == "" && !c.EntryDate.IsZero() {
		c.EntryDateDisplay = c.EntryDate.Format("02.01.2006")
	}

	if c.PreviousRoles == nil {
		c.PreviousRoles = []PreviousRole{}
	}

	return c
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
