package match

import "jobfit/internal/domain/skill"

type SkillsDetails struct {
	Total            int                  `json:"total"`
	RequiredTotal    int                  `json:"required_total"`
	RequiredMatched  int                  `json:"required_matched"`
	PreferredTotal   int                  `json:"preferred_total"`
	PreferredMatched int                  `json:"preferred_matched"`
	WeakCount        int                  `json:"weak_count"`
	Matched          []skill.MatchedSkill `json:"matched"`
	Weak             []skill.GapSkill     `json:"weak"`
	Missing          []skill.GapSkill     `json:"missing"`
}

type SkillsScore struct {
	CategoryScore
	Details SkillsDetails `json:"details"`
}

type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

type RelevantPosition struct {
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Months    int       `json:"months"`
	Relevance Relevance `json:"relevance"`
}

type ExperienceDetails struct {
	TotalYears        float64            `json:"total_years"`
	RequiredYears     int                `json:"required_years"`
	YearsMet          bool               `json:"years_met"`
	RelevantPositions []RelevantPosition `json:"relevant_positions"`
	IndustryMatch     bool               `json:"industry_match"`
	JobSeniority      string             `json:"job_seniority"`
	UserSeniority     string             `json:"user_seniority"`
	SeniorityMatch    bool               `json:"seniority_match"`
}

type ExperienceScore struct {
	CategoryScore
	Details ExperienceDetails `json:"details"`
}

type EducationDetails struct {
	RequiredDegree string   `json:"required_degree,omitempty"`
	HighestDegree  string   `json:"highest_degree,omitempty"`
	DegreeMet      bool     `json:"degree_met"`
	RequiredFields []string `json:"required_fields,omitempty"`
	FieldMet       bool     `json:"field_met"`
	GPA            *float64 `json:"gpa,omitempty"`
	GPABonus       int      `json:"gpa_bonus"`
}

type EducationScore struct {
	CategoryScore
	Details EducationDetails `json:"details"`
}

type AdditionalDetails struct {
	LocationMatch      bool `json:"location_match"`
	WorkModeMatch      bool `json:"work_mode_match"`
	SalaryMatch        bool `json:"salary_match"`
	ExpectedMinSalary  int  `json:"expected_min_salary"`
	CertificationCount int  `json:"certification_count"`
	ProjectCount       int  `json:"project_count"`
}

type AdditionalScore struct {
	CategoryScore
	Details AdditionalDetails `json:"details"`
}

type CategoryScores struct {
	Skills     SkillsScore     `json:"skills"`
	Experience ExperienceScore `json:"experience"`
	Education  EducationScore  `json:"education"`
	Additional AdditionalScore `json:"additional"`
}
