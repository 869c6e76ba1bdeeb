package matching

import (
	"jobfit/internal/catalog"
	"jobfit/internal/domain/skill"
)

const (
	foundationHours   = 20
	intermediateHours = 15
	advancedHours     = 10
	hoursPerWeek      = 10
)

type PathBuilder struct {
	cat *catalog.Catalog
}

func NewPathBuilder(cat *catalog.Catalog) *PathBuilder {
	return &PathBuilder{cat: cat}
}

func (b *PathBuilder) category(name, fallback string) string {
	if c := b.cat.Category(name); c != "" {
		return c
	}
	return fallback
}

// Build sequences weak and missing skills into phases. A gap whose category the
// user already holds at Intermediate or above skips the foundation phase.
func (b *PathBuilder) Build(a skill.GapAnalysis, userSkills []skill.UserSkill) skill.LearningPath {
	strong := make(map[string]bool)
	for _, us := range userSkills {
		if us.Level.Score() < matchedLevelScore {
			continue
		}
		if c := b.category(us.Name, us.Category); c != "" {
			strong[c] = true
		}
	}

	path := skill.LearningPath{
		Foundation:   make([]skill.PathItem, 0),
		Intermediate: make([]skill.PathItem, 0),
		Advanced:     make([]skill.PathItem, 0),
	}
	for _, g := range append(append([]skill.GapSkill{}, a.Weak...), a.Missing...) {
		c := b.category(g.Name, g.Category)
		item := skill.PathItem{Skill: g.Name, Importance: g.Importance, Category: c}
		switch {
		case c == "" || !strong[c]:
			item.Hours = foundationHours
			path.Foundation = append(path.Foundation, item)
		case g.Importance == skill.ImportanceRequired:
			item.Hours = intermediateHours
			path.Intermediate = append(path.Intermediate, item)
		default:
			item.Hours = advancedHours
			path.Advanced = append(path.Advanced, item)
		}
		path.TotalHours += item.Hours
	}
	path.EstimatedWeeks = (path.TotalHours + hoursPerWeek - 1) / hoursPerWeek
	return path
}
