package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

const (
	strengthThreshold      = 80
	namedSkillLimit        = 3
	suggestedSkillLimit    = 2
	suggestionLimit        = 10
	minRelevantForStrength = 2
	minHeadlineLength      = 20
	minProjects            = 2
)

// Aggregator combines category scores into a match result with strengths,
// gaps and suggestions.
type Aggregator struct {
	advisor *ResourceAdvisor
}

func NewAggregator(a *ResourceAdvisor) *Aggregator {
	return &Aggregator{advisor: a}
}

// Aggregate weights the category scores and derives the explanation lists.
// The returned result has no ID; callers assign one when they persist it.
func (a *Aggregator) Aggregate(scores match.CategoryScores, weights match.WeightMap, prof user.Profile, p job.Posting, now time.Time) (match.Result, error) {
	overall, norm, err := RecalculateOverallScore(scores, weights)
	if err != nil {
		return match.Result{}, err
	}
	applyWeights(&scores, norm)

	gaps := a.gaps(scores, prof)
	return match.Result{
		ProfileID:      prof.ID,
		JobID:          p.ID,
		OverallScore:   overall,
		CategoryScores: scores,
		Strengths:      a.strengths(scores, prof),
		Gaps:           gaps,
		Suggestions:    a.suggestions(scores, gaps, prof),
		Metadata: match.Metadata{
			CalculatedAt:  now,
			EngineVersion: Version,
			JobTitle:      p.Title,
			Company:       p.Company,
			Grade:         match.GradeFor(overall),
			Weights:       norm,
		},
	}, nil
}

func matchedNames(list []skill.MatchedSkill, limit int) []string {
	out := make([]string, 0, limit)
	for _, m := range list {
		if len(out) == limit {
			break
		}
		out = append(out, m.Name)
	}
	return out
}

func gapNames(list []skill.GapSkill, limit int) []string {
	out := make([]string, 0, limit)
	for _, g := range list {
		if len(out) == limit {
			break
		}
		out = append(out, g.Name)
	}
	return out
}

func splitMissing(missing []skill.GapSkill) (required, other []skill.GapSkill) {
	for _, g := range missing {
		if g.Importance == skill.ImportanceRequired {
			required = append(required, g)
		} else {
			other = append(other, g)
		}
	}
	return required, other
}

func countRelevant(positions []match.RelevantPosition) int {
	n := 0
	for _, rp := range positions {
		if rp.Relevance != match.RelevanceLow {
			n++
		}
	}
	return n
}

func (a *Aggregator) strengths(s match.CategoryScores, prof user.Profile) []match.Strength {
	out := make([]match.Strength, 0)

	if s.Skills.Score >= strengthThreshold {
		desc := "Your skills cover most of what this role asks for."
		if names := matchedNames(s.Skills.Details.Matched, namedSkillLimit); len(names) > 0 {
			desc = "You already have key skills: " + strings.Join(names, ", ") + "."
		}
		out = append(out, match.Strength{Category: match.CategorySkills, Title: "Strong skill match", Description: desc})
	}

	exp := s.Experience.Details
	if s.Experience.Score >= strengthThreshold {
		desc := fmt.Sprintf("%.1f years of experience", exp.TotalYears)
		if exp.RequiredYears > 0 {
			desc += fmt.Sprintf(" against %d required", exp.RequiredYears)
		}
		out = append(out, match.Strength{Category: match.CategoryExperience, Title: "Solid experience", Description: desc + "."})
	}
	if n := countRelevant(exp.RelevantPositions); n >= minRelevantForStrength {
		out = append(out, match.Strength{
			Category:    match.CategoryExperience,
			Title:       "Relevant background",
			Description: fmt.Sprintf("%d of your positions closely relate to this role.", n),
		})
	}

	if s.Education.Score >= strengthThreshold && s.Education.Details.DegreeMet {
		out = append(out, match.Strength{Category: match.CategoryEducation, Title: "Education fits", Description: "Your education meets the stated requirements."})
	}

	if n := len(prof.Certifications); n > 0 {
		out = append(out, match.Strength{Category: match.CategoryAdditional, Title: "Certified", Description: fmt.Sprintf("You hold %d certification(s).", n)})
	}
	if n := len(prof.Projects); n > 0 {
		out = append(out, match.Strength{Category: match.CategoryAdditional, Title: "Project portfolio", Description: fmt.Sprintf("You have %d project(s) to show.", n)})
	}
	return out
}

func (a *Aggregator) gaps(s match.CategoryScores, prof user.Profile) []match.Gap {
	out := make([]match.Gap, 0)
	sk := s.Skills.Details

	required, other := splitMissing(sk.Missing)
	if len(required) > 0 {
		out = append(out, match.Gap{
			Category:    match.CategorySkills,
			Description: "Missing required skills: " + strings.Join(gapNames(required, namedSkillLimit), ", "),
			Severity:    match.SeverityCritical,
			Suggestion:  "Learn the required skills before applying.",
		})
	}
	if len(other) > 0 {
		out = append(out, match.Gap{
			Category:    match.CategorySkills,
			Description: "Missing preferred skills: " + strings.Join(gapNames(other, namedSkillLimit), ", "),
			Severity:    match.SeverityImportant,
			Suggestion:  "Picking up these skills would make you more competitive.",
		})
	}
	if len(sk.Weak) > 0 {
		out = append(out, match.Gap{
			Category:    match.CategorySkills,
			Description: "Skills to strengthen: " + strings.Join(gapNames(sk.Weak, namedSkillLimit), ", "),
			Severity:    match.SeverityMinor,
			Suggestion:  "Build deeper proficiency through practice projects.",
		})
	}

	exp := s.Experience.Details
	if exp.RequiredYears > 0 && !exp.YearsMet {
		sev := match.SeverityImportant
		if exp.TotalYears < float64(exp.RequiredYears)/2 {
			sev = match.SeverityCritical
		}
		out = append(out, match.Gap{
			Category:    match.CategoryExperience,
			Description: fmt.Sprintf("%d years required, you have %.1f", exp.RequiredYears, exp.TotalYears),
			Severity:    sev,
			Suggestion:  "Highlight transferable experience and side projects.",
		})
	}
	if countRelevant(exp.RelevantPositions) == 0 {
		desc := "None of your positions closely relate to this role"
		if len(prof.Employment) == 0 {
			desc = "No work experience listed"
		}
		out = append(out, match.Gap{
			Category:    match.CategoryExperience,
			Description: desc,
			Severity:    match.SeverityImportant,
			Suggestion:  "Emphasize responsibilities that overlap with this role.",
		})
	}

	edu := s.Education.Details
	if edu.RequiredDegree != "" && (len(prof.Education) == 0 || !edu.DegreeMet) {
		out = append(out, match.Gap{
			Category:    match.CategoryEducation,
			Description: fmt.Sprintf("A %s degree is required", edu.RequiredDegree),
			Severity:    match.SeverityImportant,
			Suggestion:  "Consider equivalent certifications or point to comparable experience.",
		})
	}
	if len(prof.Education) > 0 && !edu.FieldMet {
		out = append(out, match.Gap{
			Category:    match.CategoryEducation,
			Description: "Preferred field of study: " + strings.Join(edu.RequiredFields, ", "),
			Severity:    match.SeverityMinor,
			Suggestion:  "Show coursework or training related to the field.",
		})
	}

	if !s.Additional.Details.LocationMatch {
		out = append(out, match.Gap{
			Category:    match.CategoryAdditional,
			Description: "Your location does not match the job location",
			Severity:    match.SeverityMinor,
			Suggestion:  "Mention whether you are open to relocation.",
		})
	}
	return out
}

func severityPriority(s match.Severity) match.Priority {
	switch s {
	case match.SeverityCritical:
		return match.PriorityHigh
	case match.SeverityImportant:
		return match.PriorityMedium
	default:
		return match.PriorityLow
	}
}

func (a *Aggregator) resources(name string) []match.Resource {
	links := a.advisor.Links(name)
	out := make([]match.Resource, 0, len(links)+1)
	for _, l := range links {
		out = append(out, match.Resource{Title: l.Platform, URL: l.URL})
	}
	if docs := a.advisor.cat.Docs(name); docs != "" {
		out = append(out, match.Resource{Title: "Documentation", URL: docs})
	}
	return out
}

func (a *Aggregator) suggestions(s match.CategoryScores, gaps []match.Gap, prof user.Profile) []match.Suggestion {
	out := make([]match.Suggestion, 0)
	var criticalSkills, criticalExperience bool
	var educationGap *match.Gap
	for i, g := range gaps {
		switch {
		case g.Category == match.CategorySkills && g.Severity == match.SeverityCritical:
			criticalSkills = true
		case g.Category == match.CategoryExperience && g.Severity == match.SeverityCritical:
			criticalExperience = true
		case g.Category == match.CategoryEducation:
			if educationGap == nil || severityPriority(g.Severity).Rank() > severityPriority(educationGap.Severity).Rank() {
				educationGap = &gaps[i]
			}
		}
	}

	if criticalSkills {
		required, _ := splitMissing(s.Skills.Details.Missing)
		for _, g := range gapNames(required, suggestedSkillLimit) {
			out = append(out, match.Suggestion{
				Type:            match.CategorySkills,
				Priority:        match.PriorityHigh,
				Title:           "Learn " + g,
				Description:     g + " is required for this role.",
				EstimatedImpact: 8,
				Resources:       a.resources(g),
			})
		}
	}
	if len(s.Skills.Details.Weak) > 0 {
		out = append(out, match.Suggestion{
			Type:            match.CategorySkills,
			Priority:        match.PriorityMedium,
			Title:           "Strengthen your existing skills",
			Description:     "Deepen your knowledge of " + strings.Join(gapNames(s.Skills.Details.Weak, namedSkillLimit), ", ") + ".",
			EstimatedImpact: 6,
			Resources:       make([]match.Resource, 0),
		})
	}
	if criticalExperience {
		out = append(out, match.Suggestion{
			Type:            match.CategoryExperience,
			Priority:        match.PriorityHigh,
			Title:           "Gain more relevant experience",
			Description:     "Freelance work, open source contributions and internships all count toward experience.",
			EstimatedImpact: 7,
			Resources:       make([]match.Resource, 0),
		})
	}
	if educationGap != nil {
		out = append(out, match.Suggestion{
			Type:            match.CategoryEducation,
			Priority:        severityPriority(educationGap.Severity),
			Title:           "Address the education requirement",
			Description:     educationGap.Suggestion,
			EstimatedImpact: 5,
			Resources:       make([]match.Resource, 0),
		})
	}

	if len(strings.TrimSpace(prof.Headline)) < minHeadlineLength {
		out = append(out, match.Suggestion{
			Type:            match.CategoryProfile,
			Priority:        match.PriorityLow,
			Title:           "Improve your headline",
			Description:     "A descriptive headline helps recruiters understand your focus.",
			EstimatedImpact: 3,
			Resources:       make([]match.Resource, 0),
		})
	}
	if len(prof.Projects) < minProjects {
		out = append(out, match.Suggestion{
			Type:            match.CategoryProfile,
			Priority:        match.PriorityMedium,
			Title:           "Add more projects",
			Description:     "Projects demonstrate your skills in practice.",
			EstimatedImpact: 5,
			Resources:       make([]match.Resource, 0),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		}
		return out[i].EstimatedImpact > out[j].EstimatedImpact
	})
	if len(out) > suggestionLimit {
		out = out[:suggestionLimit]
	}
	return out
}
