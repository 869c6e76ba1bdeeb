package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit/internal/domain/skill"
)

func TestResourceAdvisor(t *testing.T) {
	r := NewResourceAdvisor(smallCatalog(t))

	got := r.Resources([]skill.GapSkill{{Name: "C++"}, {Name: "Go"}})

	require.Len(t, got, 2)
	require.Len(t, got[0].Links, 1)
	assert.Equal(t, "Coursera", got[0].Links[0].Platform)
	assert.Equal(t, "https://www.coursera.org/search?query=C%2B%2B", got[0].Links[0].URL)
	assert.Empty(t, got[0].Documentation)
	assert.Equal(t, "https://go.dev/doc/", got[1].Documentation)
}

func TestResourceAdvisorEscapesSpaces(t *testing.T) {
	links := NewResourceAdvisor(smallCatalog(t)).Links("Machine Learning")

	require.Len(t, links, 1)
	assert.Equal(t, "https://www.coursera.org/search?query=Machine+Learning", links[0].URL)
}
