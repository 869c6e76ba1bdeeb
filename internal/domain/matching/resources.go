package matching

import (
	"net/url"
	"strings"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/skill"
)

type ResourceAdvisor struct {
	cat *catalog.Catalog
}

func NewResourceAdvisor(cat *catalog.Catalog) *ResourceAdvisor {
	return &ResourceAdvisor{cat: cat}
}

// Links returns one search link per learning platform for name.
func (r *ResourceAdvisor) Links(name string) []skill.ResourceLink {
	platforms := r.cat.Platforms()
	out := make([]skill.ResourceLink, 0, len(platforms))
	q := url.QueryEscape(strings.TrimSpace(name))
	for _, p := range platforms {
		out = append(out, skill.ResourceLink{
			Platform: p.Name,
			URL:      strings.ReplaceAll(p.URL, catalog.SkillPlaceholder, q),
		})
	}
	return out
}

// Resources maps each gap skill to platform links and its documentation, when known.
func (r *ResourceAdvisor) Resources(gaps []skill.GapSkill) []skill.LearningResource {
	out := make([]skill.LearningResource, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, skill.LearningResource{
			Skill:         g.Name,
			Links:         r.Links(g.Name),
			Documentation: r.cat.Docs(g.Name),
		})
	}
	return out
}
