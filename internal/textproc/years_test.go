package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearsRequired(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{"plus form", []string{"5+ years of experience with Go"}, 5},
		{"range counts lower bound", []string{"3-5 years of experience"}, 3},
		{"minimum of", []string{"Minimum of 7 years in software"}, 7},
		{"at least", []string{"at least 2 yrs building APIs"}, 2},
		{"qualified experience", []string{"4 years of professional experience"}, 4},
		{"largest across texts", []string{"2+ years Go", "6+ years overall"}, 6},
		{"implausible value ignored", []string{"45+ years"}, 0},
		{"three digit number ignored", []string{"over 100 years of history"}, 0},
		{"nothing", []string{"", "Great team"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearsRequired(tt.texts...))
		})
	}
}
