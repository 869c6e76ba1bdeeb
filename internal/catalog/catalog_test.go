package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit/internal/domain/skill"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(c.Skills()), 250)
	assert.Equal(t, 10.0, c.ImportanceWeight(skill.ImportanceRequired))
	assert.Equal(t, 7.0, c.ImportanceWeight(skill.ImportancePreferred))
	assert.Equal(t, 4.0, c.ImportanceWeight(skill.ImportanceNiceToHave))
	assert.NotEmpty(t, c.Platforms())
	assert.Contains(t, c.FieldsOfStudy(), "computer science")

	js, ok := c.Lookup("javascript")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", js.Name)
	assert.Equal(t, "language", c.Category("JAVASCRIPT"))
	assert.NotEmpty(t, c.Docs("React"))

	_, ok = c.Lookup("javascript ninja")
	assert.False(t, ok)
	assert.Equal(t, "", c.Category("javascript ninja"))
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "duplicate skill",
			raw: `
importance_weights: {required: 10, preferred: 7, nice-to-have: 4}
skills:
  - {name: Go, category: language}
  - {name: go, category: language}
`,
		},
		{
			name: "missing weight",
			raw: `
importance_weights: {required: 10, preferred: 7}
skills:
  - {name: Go, category: language}
`,
		},
		{
			name: "platform without placeholder",
			raw: `
importance_weights: {required: 10, preferred: 7, nice-to-have: 4}
platforms:
  - {name: Docs, url: "https://example.com"}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("skills: [:"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.yaml")
	raw := `
importance_weights: {required: 3, preferred: 2, nice-to-have: 1}
fields_of_study: [" Physics "]
skills:
  - {name: Go, category: Language}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Skills(), 1)
	assert.Equal(t, "language", c.Category("go"))
	assert.Equal(t, []string{"physics"}, c.FieldsOfStudy())
	assert.Equal(t, 3.0, c.ImportanceWeight(skill.ImportanceRequired))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustDefault()
	skills := c.Skills()
	skills[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.Skills()[0].Name)
}
