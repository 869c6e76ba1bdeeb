package skill

// MatchedSkill is a job skill the user already holds at Intermediate or above.
type MatchedSkill struct {
	Name       string     `json:"name"`
	Importance Importance `json:"importance"`
	UserLevel  Level      `json:"user_level"`
	Category   string     `json:"category,omitempty"`
}

// GapSkill is a job skill the user lacks (missing) or holds only at Beginner (weak).
type GapSkill struct {
	Name       string     `json:"name"`
	Importance Importance `json:"importance"`
	Priority   float64    `json:"priority"`
	UserLevel  Level      `json:"user_level,omitempty"`
	Category   string     `json:"category,omitempty"`
}

type GapAnalysis struct {
	Matched         []MatchedSkill `json:"matched"`
	Weak            []GapSkill     `json:"weak"`
	Missing         []GapSkill     `json:"missing"`
	MatchPercentage int            `json:"match_percentage"`
	Summary         string         `json:"summary"`
}

// Gaps returns missing skills followed by weak skills.
func (a GapAnalysis) Gaps() []GapSkill {
	out := make([]GapSkill, 0, len(a.Missing)+len(a.Weak))
	out = append(out, a.Missing...)
	out = append(out, a.Weak...)
	return out
}

type ResourceLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type LearningResource struct {
	Skill         string         `json:"skill"`
	Links         []ResourceLink `json:"links"`
	Documentation string         `json:"documentation,omitempty"`
}

type Phase string

const (
	PhaseFoundation   Phase = "foundation"
	PhaseIntermediate Phase = "intermediate"
	PhaseAdvanced     Phase = "advanced"
)

type PathItem struct {
	Skill      string     `json:"skill"`
	Importance Importance `json:"importance"`
	Category   string     `json:"category,omitempty"`
	Hours      int        `json:"hours"`
}

type LearningPath struct {
	Foundation     []PathItem `json:"foundation"`
	Intermediate   []PathItem `json:"intermediate"`
	Advanced       []PathItem `json:"advanced"`
	TotalHours     int        `json:"total_hours"`
	EstimatedWeeks int        `json:"estimated_weeks"`
}

// GapReport is a gap analysis together with its learning guidance.
type GapReport struct {
	GapAnalysis
	LearningResources []LearningResource `json:"learning_resources"`
	LearningPath      LearningPath       `json:"learning_path"`
}

type TrendingSkill struct {
	Name       string     `json:"name"`
	Frequency  int        `json:"frequency"`
	Percentage int        `json:"percentage"`
	Importance Importance `json:"importance"`
	Category   string     `json:"category,omitempty"`
	HasSkill   bool       `json:"has_skill"`
}

type TrendReport struct {
	JobCount        int             `json:"job_count"`
	Trending        []TrendingSkill `json:"trending"`
	CriticalGaps    []TrendingSkill `json:"critical_gaps"`
	Recommendations []string        `json:"recommendations"`
}
