package match

import "github.com/google/uuid"

type RankedMatch struct {
	Rank        int       `json:"rank"`
	MatchID     uuid.UUID `json:"match_id"`
	JobID       uuid.UUID `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	Score       int       `json:"score"`
	SkillsScore int       `json:"skills_score"`
	Grade       Grade     `json:"grade"`
}

type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

type RecommendationKind string

const (
	RecommendationPriority RecommendationKind = "priority"
	RecommendationWarning  RecommendationKind = "warning"
	RecommendationSkills   RecommendationKind = "skills"
)

type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Message string             `json:"message"`
}

type Comparison struct {
	TotalJobs         int               `json:"total_jobs"`
	AverageScore      int               `json:"average_score"`
	BestMatch         *RankedMatch      `json:"best_match"`
	WorstMatch        *RankedMatch      `json:"worst_match"`
	Rankings          []RankedMatch     `json:"rankings"`
	Recommendations   []Recommendation  `json:"recommendations"`
	ScoreDistribution ScoreDistribution `json:"score_distribution"`
}
