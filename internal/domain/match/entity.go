package match

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityImportant Severity = "important"
	SeverityMinor     Severity = "minor"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities so that a larger value sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Category string

const (
	CategorySkills     Category = "skills"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategoryAdditional Category = "additional"
	CategoryProfile    Category = "profile"
)

type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradePoor      Grade = "Poor"
)

// GradeFor buckets an overall score: Excellent >=85, Good >=70, Fair >=55, else Poor.
func GradeFor(score int) Grade {
	switch {
	case score >= 85:
		return GradeExcellent
	case score >= 70:
		return GradeGood
	case score >= 55:
		return GradeFair
	default:
		return GradePoor
	}
}

type CategoryScore struct {
	Score  int `json:"score"`
	Weight int `json:"weight"`
}

type Strength struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

type Gap struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Suggestion  string   `json:"suggestion"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Suggestion struct {
	Type            Category   `json:"type"`
	Priority        Priority   `json:"priority"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedImpact int        `json:"estimated_impact"`
	Resources       []Resource `json:"resources"`
}

type Metadata struct {
	CalculatedAt  time.Time `json:"calculated_at"`
	EngineVersion string    `json:"engine_version"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	Grade         Grade     `json:"grade"`
	Weights       WeightMap `json:"weights"`
}

type Result struct {
	ID             uuid.UUID      `json:"id"`
	ProfileID      uuid.UUID      `json:"profile_id"`
	JobID          uuid.UUID      `json:"job_id"`
	OverallScore   int            `json:"overall_score"`
	CategoryScores CategoryScores `json:"category_scores"`
	Strengths      []Strength     `json:"strengths"`
	Gaps           []Gap          `json:"gaps"`
	Suggestions    []Suggestion   `json:"suggestions"`
	CustomWeights  *WeightMap     `json:"custom_weights,omitempty"`
	Metadata       Metadata       `json:"metadata"`
}
