package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

var fixedNow = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadDefault()
	require.NoError(t, err)
	return c
}

// smallCatalog keeps expectations independent of the embedded dictionary.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Data{
		ImportanceWeights: map[string]float64{"required": 10, "preferred": 7, "nice-to-have": 4},
		Platforms: []catalog.Platform{
			{Name: "Coursera", URL: "https://www.coursera.org/search?query={skill}"},
		},
		FieldsOfStudy: []string{"computer science", "mathematics"},
		Skills: []catalog.Skill{
			{Name: "Go", Category: "language", Docs: "https://go.dev/doc/"},
			{Name: "Rust", Category: "language"},
			{Name: "React", Category: "frontend"},
			{Name: "Vue.js", Category: "frontend"},
			{Name: "Angular", Category: "frontend"},
			{Name: "Docker", Category: "devops"},
			{Name: "Kubernetes", Category: "devops"},
			{Name: "C++", Category: "language"},
		},
	})
	require.NoError(t, err)
	return c
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(defaultCatalog(t), WithClock(func() time.Time { return fixedNow }))
}

func employment(title, company string, startYear int, startMonth time.Month, current bool) user.Employment {
	e := user.Employment{Title: title, Company: company, StartDate: user.NewDate(startYear, startMonth), Current: current}
	if !current {
		end := user.NewDate(fixedNow.Year(), fixedNow.Month())
		e.EndDate = &end
	}
	return e
}

func names[T skill.MatchedSkill | skill.GapSkill | skill.Record | skill.TrendingSkill](list []T) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		switch x := any(v).(type) {
		case skill.MatchedSkill:
			out = append(out, x.Name)
		case skill.GapSkill:
			out = append(out, x.Name)
		case skill.Record:
			out = append(out, x.Name)
		case skill.TrendingSkill:
			out = append(out, x.Name)
		}
	}
	return out
}
