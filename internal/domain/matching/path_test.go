package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit/internal/domain/skill"
)

func TestPathBuilderPhases(t *testing.T) {
	b := NewPathBuilder(smallCatalog(t))
	a := skill.GapAnalysis{
		Weak: []skill.GapSkill{{Name: "Go", Importance: skill.ImportanceNiceToHave}},
		Missing: []skill.GapSkill{
			{Name: "Vue.js", Importance: skill.ImportanceRequired},
			{Name: "Docker", Importance: skill.ImportanceRequired},
			{Name: "Angular", Importance: skill.ImportancePreferred},
			{Name: "Underwater Basket Weaving", Importance: skill.ImportanceRequired},
		},
	}
	userSkills := []skill.UserSkill{
		{Name: "React", Level: skill.LevelAdvanced},
		{Name: "Go", Level: skill.LevelBeginner},
	}

	got := b.Build(a, userSkills)

	require.Len(t, got.Foundation, 3)
	assert.Equal(t, "Go", got.Foundation[0].Skill)
	assert.Equal(t, "Docker", got.Foundation[1].Skill)
	assert.Equal(t, "Underwater Basket Weaving", got.Foundation[2].Skill)
	require.Len(t, got.Intermediate, 1)
	assert.Equal(t, "Vue.js", got.Intermediate[0].Skill)
	assert.Equal(t, 15, got.Intermediate[0].Hours)
	require.Len(t, got.Advanced, 1)
	assert.Equal(t, "Angular", got.Advanced[0].Skill)

	assert.Equal(t, 3*20+15+10, got.TotalHours)
	assert.Equal(t, 9, got.EstimatedWeeks)
}

func TestPathBuilderEmpty(t *testing.T) {
	got := NewPathBuilder(smallCatalog(t)).Build(skill.GapAnalysis{}, nil)

	assert.Equal(t, 0, got.TotalHours)
	assert.Equal(t, 0, got.EstimatedWeeks)
	assert.NotNil(t, got.Foundation)
}

func TestPathBuilderUsesUserCategoryForUnknownSkills(t *testing.T) {
	b := NewPathBuilder(smallCatalog(t))
	a := skill.GapAnalysis{Missing: []skill.GapSkill{{Name: "Pulumi", Importance: skill.ImportanceRequired, Category: "devops"}}}

	got := b.Build(a, []skill.UserSkill{{Name: "Ansible", Level: skill.LevelExpert, Category: "devops"}})

	require.Len(t, got.Intermediate, 1)
	assert.Equal(t, 2, got.EstimatedWeeks)
}
