package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stops at conjunction",
			text: "Must have experience with Kubernetes and Helm",
			want: []string{"Kubernetes"},
		},
		{
			name: "stops at punctuation",
			text: "Experience in React, Redux",
			want: []string{"React"},
		},
		{
			name: "drops article and caps length",
			text: "Knowledge of the AWS cloud platform services today",
			want: []string{"AWS cloud platform services"},
		},
		{
			name: "several templates",
			text: "Familiarity with Event Sourcing. Proficiency in Go",
			want: []string{"Event Sourcing", "Go"},
		},
		{
			name: "duplicates removed",
			text: "experience with Docker. Knowledge of docker",
			want: []string{"Docker"},
		},
		{
			name: "no template",
			text: "We build payment systems",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhrases(tt.text))
		})
	}
}
