package kernel_test

import (
	"testing"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

func TestSalaryRangeOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		candidate kernel.SalaryRange
		filter    kernel.SalaryRange
		want      bool
	}{
		{
			name:      "overlapping ranges",
			candidate: kernel.SalaryRange{Min: 100000, Max: 150000},
			filter:    kernel.SalaryRange{Min: 120000, Max: 200000},
			want:      true,
		},
		{
			name:      "disjoint ranges",
			candidate: kernel.SalaryRange{Min: 100000, Max: 150000},
			filter:    kernel.SalaryRange{Min: 200000, Max: 300000},
			want:      false,
		},
		{
			name:      "touching at a single point",
			candidate: kernel.SalaryRange{Min: 100000, Max: 150000},
			filter:    kernel.SalaryRange{Min: 150000, Max: 200000},
			want:      true,
		},
		{
			name:      "unspecified candidate passes any filter",
			candidate: kernel.SalaryRange{},
			filter:    kernel.SalaryRange{Min: 200000, Max: 300000},
			want:      true,
		},
		{
			name:      "unspecified filter passes any candidate",
			candidate: kernel.SalaryRange{Min: 80000, Max: 90000},
			filter:    kernel.SalaryRange{},
			want:      true,
		},
		{
			name:      "open-ended candidate max",
			candidate: kernel.SalaryRange{Min: 250000},
			filter:    kernel.SalaryRange{Min: 200000, Max: 300000},
			want:      true,
		},
		{
			name:      "open-ended filter max",
			candidate: kernel.SalaryRange{Min: 100000, Max: 120000},
			filter:    kernel.SalaryRange{Min: 110000},
			want:      true,
		},
		{
			name:      "open-ended filter max below candidate",
			candidate: kernel.SalaryRange{Min: 100000, Max: 120000},
			filter:    kernel.SalaryRange{Min: 130000},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.Overlaps(tt.filter); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.candidate, tt.filter, got, tt.want)
			}
		})
	}
}

func TestSalaryRangeFormat(t *testing.T) {
	tests := []struct {
		name  string
		input kernel.SalaryRange
		want  string
	}{
		{"full range", kernel.SalaryRange{Min: 100000, Max: 150000}, "CHF 100'000 – 150'000"},
		{"min only", kernel.SalaryRange{Min: 120000}, "CHF 120'000+"},
		{"max only", kernel.SalaryRange{Max: 90000}, "up to CHF 90'000"},
		{"unspecified", kernel.SalaryRange{}, "Salary not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCantonValidity(t *testing.T) {
	if !kernel.Canton("ZH").IsValid() {
		t.Error("ZH should be a valid canton")
	}
	if kernel.Canton("XX").IsValid() {
		t.Error("XX should not be a valid canton")
	}
	if got := kernel.Canton("GE").GetDisplayName(); got != "Geneva" {
		t.Errorf("GetDisplayName(GE) = %q, want Geneva", got)
	}
	// Unknown codes display as themselves instead of breaking.
	if got := kernel.Canton("XX").GetDisplayName(); got != "XX" {
		t.Errorf("GetDisplayName(XX) = %q, want XX", got)
	}
}
