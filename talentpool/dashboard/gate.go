package dashboard

import (
	"time"

	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
)

// RenderState is the dashboard's access decision.
type RenderState string

const (
	// RenderLoading: the session is still resolving. Placeholder cards only.
	RenderLoading RenderState = "loading"
	// RenderLive: authenticated; real candidate data may be shown.
	RenderLive RenderState = "live"
	// RenderLocked: no authenticated user. Placeholder cards behind the
	// sign-in prompt; interactions are unreachable.
	RenderLocked RenderState = "locked"
)

// GateResult is what the view layer renders from: either the real candidate
// set (live) or the fixed placeholder set (loading, locked).
type GateResult struct {
	State      RenderState
	Candidates []candidate.Candidate
}

// Interactive reports whether shortlist and intro-request controls are
// reachable in this state.
func (r GateResult) Interactive() bool {
	return r.State == RenderLive
}

// ResolveGate decides what may be rendered for the given session. A session
// that is still loading is never treated as signed out, even when cached data
// exists from a previous visit: a signed-out flash on a slow token refresh is
// worse than a moment of skeletons.
func ResolveGate(session auth.Session, candidates []candidate.Candidate) GateResult {
	if session.IsLoading {
		return GateResult{State: RenderLoading, Candidates: PlaceholderCandidates()}
	}
	if !session.IsAuthenticated() {
		return GateResult{State: RenderLocked, Candidates: PlaceholderCandidates()}
	}
	return GateResult{State: RenderLive, Candidates: candidates}
}

// PlaceholderCandidates returns the fixed obfuscated set rendered while the
// dashboard is loading or locked. The entries are invented and stable: no real
// candidate data can leak through a blurred card.
func PlaceholderCandidates() []candidate.Candidate {
	entries := make([]candidate.Candidate, len(placeholderSet))
	copy(entries, placeholderSet)
	return entries
}

var placeholderSet = []candidate.Candidate{
	{
		ID:           kernel.CandidateID("placeholder-1"),
		Role:         "Senior Software Engineer",
		Skills:       []string{"Go", "Kubernetes", "PostgreSQL"},
		Experience:   "8 years",
		Seniority:    kernel.SenioritySenior,
		Cantons:      []kernel.Canton{"ZH"},
		Salary:       kernel.SalaryRange{Min: 110000, Max: 140000},
		Availability: "Immediately",
		EntryDate:    placeholderDate(0),
		Languages:    []string{"English", "German"},
		WorkPermit:   kernel.WorkPermitCitizen,
	},
	{
		ID:           kernel.CandidateID("placeholder-2"),
		Role:         "Product Manager",
		Skills:       []string{"Roadmapping", "Analytics", "B2B SaaS"},
		Experience:   "6 years",
		Seniority:    kernel.SeniorityMidLevel,
		Cantons:      []kernel.Canton{"GE"},
		Salary:       kernel.SalaryRange{Min: 100000, Max: 130000},
		Availability: "2 months",
		EntryDate:    placeholderDate(1),
		Languages:    []string{"English", "French"},
		WorkPermit:   kernel.WorkPermitEU,
	},
	{
		ID:           kernel.CandidateID("placeholder-3"),
		Role:         "Data Scientist",
		Skills:       []string{"Python", "ML", "SQL"},
		Experience:   "5 years",
		Seniority:    kernel.SeniorityMidLevel,
		Cantons:      []kernel.Canton{"VD"},
		Salary:       kernel.SalaryRange{Min: 95000, Max: 125000},
		Availability: "1 month",
		EntryDate:    placeholderDate(2),
		Languages:    []string{"English"},
		WorkPermit:   kernel.WorkPermitB,
	},
	{
		ID:           kernel.CandidateID("placeholder-4"),
		Role:         "DevOps Engineer",
		Skills:       []string{"AWS", "Terraform", "CI/CD"},
		Experience:   "7 years",
		Seniority:    kernel.SenioritySenior,
		Cantons:      []kernel.Canton{"BE"},
		Salary:       kernel.SalaryRange{Min: 105000, Max: 135000},
		Availability: "Negotiable",
		EntryDate:    placeholderDate(3),
		Languages:    []string{"German", "English"},
		WorkPermit:   kernel.WorkPermitC,
	},
	{
		ID:           kernel.CandidateID("placeholder-5"),
		Role:         "Frontend Developer",
		Skills:       []string{"TypeScript", "React", "CSS"},
		Experience:   "4 years",
		Seniority:    kernel.SeniorityMidLevel,
		Cantons:      []kernel.Canton{"BS"},
		Salary:       kernel.SalaryRange{Min: 90000, Max: 115000},
		Availability: "3 months",
		EntryDate:    placeholderDate(4),
		Languages:    []string{"English", "German"},
		WorkPermit:   kernel.WorkPermitCitizen,
	},
	{
		ID:           kernel.CandidateID("placeholder-6"),
		Role:         "Engineering Manager",
		Skills:       []string{"Team Leadership", "Architecture", "Hiring"},
		Experience:   "12 years",
		Seniority:    kernel.SeniorityExecutive,
		Cantons:      []kernel.Canton{"ZG"},
		Salary:       kernel.SalaryRange{Min: 140000, Max: 180000},
		Availability: "Negotiable",
		EntryDate:    placeholderDate(5),
		Languages:    []string{"English", "German", "French"},
		WorkPermit:   kernel.WorkPermitCitizen,
	},
}

func placeholderDate(weeksAgo int) time.Time {
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, -7*weeksAgo)
}
