package matching

import (
	"fmt"
	"math"
	"sort"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/skill"
)

const (
	missingPriorityFactor = 2.0
	weakPriorityFactor    = 1.5
	matchedLevelScore     = 2
)

type GapAnalyzer struct {
	cat *catalog.Catalog
}

func NewGapAnalyzer(cat *catalog.Catalog) *GapAnalyzer {
	return &GapAnalyzer{cat: cat}
}

func userSkillIndex(userSkills []skill.UserSkill) map[string]skill.UserSkill {
	idx := make(map[string]skill.UserSkill, len(userSkills))
	for _, us := range userSkills {
		key := skill.NormalizeName(us.Name)
		if key == "" {
			continue
		}
		// Keep the strongest entry when a name is listed twice.
		if prev, ok := idx[key]; ok && prev.Level.Score() >= us.Level.Score() {
			continue
		}
		idx[key] = us
	}
	return idx
}

// Analyze partitions jobSkills into matched, weak and missing. Every job skill
// lands in exactly one of the three lists.
func (g *GapAnalyzer) Analyze(userSkills []skill.UserSkill, jobSkills []skill.Record) skill.GapAnalysis {
	have := userSkillIndex(userSkills)
	out := skill.GapAnalysis{
		Matched: make([]skill.MatchedSkill, 0),
		Weak:    make([]skill.GapSkill, 0),
		Missing: make([]skill.GapSkill, 0),
	}

	for _, js := range jobSkills {
		w := g.cat.ImportanceWeight(js.Importance)
		us, ok := have[skill.NormalizeName(js.Name)]
		switch {
		case !ok:
			out.Missing = append(out.Missing, skill.GapSkill{
				Name:       js.Name,
				Importance: js.Importance,
				Priority:   w * missingPriorityFactor,
				Category:   js.Category,
			})
		case us.Level.Score() >= matchedLevelScore:
			out.Matched = append(out.Matched, skill.MatchedSkill{
				Name:       js.Name,
				Importance: js.Importance,
				UserLevel:  us.Level,
				Category:   js.Category,
			})
		default:
			out.Weak = append(out.Weak, skill.GapSkill{
				Name:       js.Name,
				Importance: js.Importance,
				Priority:   w * weakPriorityFactor,
				UserLevel:  us.Level,
				Category:   js.Category,
			})
		}
	}

	byPriority := func(list []skill.GapSkill) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Priority > list[j].Priority })
	}
	byPriority(out.Missing)
	byPriority(out.Weak)

	out.MatchPercentage = percentage(len(out.Matched), len(jobSkills))
	out.Summary = gapSummary(out, len(jobSkills))
	return out
}

// percentage returns round(part/total*100), or 0 when total is 0.
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func gapSummary(a skill.GapAnalysis, total int) string {
	if total == 0 {
		return "No skills could be identified for this job."
	}
	return fmt.Sprintf("You match %d of %d skills (%d%%): %d to strengthen, %d missing.",
		len(a.Matched), total, a.MatchPercentage, len(a.Weak), len(a.Missing))
}
