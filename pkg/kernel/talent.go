package kernel

import "fmt"

// Seniority is the coarse experience tier shown on anonymized profiles.
type Seniority string

const (
	SeniorityJunior       Seniority = "Junior"
	SeniorityMidLevel     Seniority = "Mid-level"
	SenioritySenior       Seniority = "Senior"
	SeniorityExecutive    Seniority = "Executive"
	SeniorityNotSpecified Seniority = "Not specified"
)

// IsKnown reports whether s is one of the fixed seniority labels.
func (s Seniority) IsKnown() bool {
	switch s {
	case SeniorityJunior, SeniorityMidLevel, SenioritySenior, SeniorityExecutive, SeniorityNotSpecified:
		return true
	}
	return false
}

// Canton is a Swiss-region location code (e.g. "ZH", "GE").
type Canton string

var cantonNames = map[Canton]string{
	"AG": "Aargau", "AI": "Appenzell Innerrhoden", "AR": "Appenzell Ausserrhoden",
	"BE": "Bern", "BL": "Basel-Landschaft", "BS": "Basel-Stadt",
	"FR": "Fribourg", "GE": "Geneva", "GL": "Glarus", "GR": "Graubünden",
	"JU": "Jura", "LU": "Lucerne", "NE": "Neuchâtel", "NW": "Nidwalden",
	"OW": "Obwalden", "SG": "St. Gallen", "SH": "Schaffhausen", "SO": "Solothurn",
	"SZ": "Schwyz", "TG": "Thurgau", "TI": "Ticino", "UR": "Uri",
	"VD": "Vaud", "VS": "Valais", "ZG": "Zug", "ZH": "Zurich",
}

// IsValid reports whether the code is one of the 26 cantons.
func (c Canton) IsValid() bool {
	_, ok := cantonNames[c]
	return ok
}

// GetDisplayName returns the canton's full name, or the raw code for unknown
// values so display never breaks on bad data.
func (c Canton) GetDisplayName() string {
	if name, ok := cantonNames[c]; ok {
		return name
	}
	return string(c)
}

// WorkPermit is a Swiss work-eligibility code.
type WorkPermit string

const (
	WorkPermitCitizen  WorkPermit = "CH"  // Swiss citizen
	WorkPermitEU       WorkPermit = "EU"  // EU/EFTA passport
	WorkPermitB        WorkPermit = "B"   // Residence permit
	WorkPermitC        WorkPermit = "C"   // Settlement permit
	WorkPermitG        WorkPermit = "G"   // Cross-border commuter
	WorkPermitL        WorkPermit = "L"   // Short-term residence
	WorkPermitRequired WorkPermit = "REQ" // Needs sponsorship
)

// GetDisplayName returns a human-readable permit description.
func (w WorkPermit) GetDisplayName() string {
	switch w {
	case WorkPermitCitizen:
		return "Swiss citizen"
	case WorkPermitEU:
		return "EU/EFTA passport"
	case WorkPermitB:
		return "Permit B"
	case WorkPermitC:
		return "Permit C"
	case WorkPermitG:
		return "Permit G"
	case WorkPermitL:
		return "Permit L"
	case WorkPermitRequired:
		return "Requires sponsorship"
	default:
		return string(w)
	}
}

// SalaryRange is an annual CHF range. A zero Min and Max means the candidate
// did not state expectations; that must read as "matches anything", never as
// a 0–0 band.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsUnspecified reports whether no salary data was provided.
func (r SalaryRange) IsUnspecified() bool {
	return r.Min == 0 && r.Max == 0
}

// Overlaps reports whether the candidate range intersects the filter range.
// Absent bounds substitute 0 (min) and +inf (max) on either side, and a fully
// unspecified candidate range passes any filter.
func (r SalaryRange) Overlaps(filter SalaryRange) bool {
	if filter.IsUnspecified() {
		return true
	}
	if r.IsUnspecified() {
		return true
	}
	cMin, cMax := r.Min, r.Max
	if cMax == 0 {
		cMax = int(^uint(0) >> 1)
	}
	fMin, fMax := filter.Min, filter.Max
	if fMax == 0 {
		fMax = int(^uint(0) >> 1)
	}
	return cMin <= fMax && cMax >= fMin
}

// Format renders the range the way profile cards show it ("CHF 100'000 –
// 150'000"), or a fixed placeholder when unspecified.
func (r SalaryRange) Format() string {
	if r.IsUnspecified() {
		return "Salary not specified"
	}
	if r.Min != 0 && r.Max != 0 {
		return fmt.Sprintf("CHF %s – %s", formatThousands(r.Min), formatThousands(r.Max))
	}
	if r.Min != 0 {
		return fmt.Sprintf("CHF %s+", formatThousands(r.Min))
	}
	return fmt.Sprintf("up to CHF %s", formatThousands(r.Max))
}

// formatThousands renders 120000 as 120'000 (Swiss convention).
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '\'')
		}
		out = append(out, d)
	}
	return string(out)
}
