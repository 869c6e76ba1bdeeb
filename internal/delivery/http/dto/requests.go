package dto

import (
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

type AnalyzeMatchRequest struct {
	Profile user.Profile     `json:"profile"`
	Job     job.Posting      `json:"job"`
	Weights *match.WeightMap `json:"weights,omitempty"`
}

type AnalyzeSkillGapRequest struct {
	Skills []skill.UserSkill `json:"skills"`
	Job    job.Posting       `json:"job"`
}

// WeightsRequest is the optional body of the match and batch endpoints.
type WeightsRequest struct {
	Weights *match.WeightMap `json:"weights,omitempty"`
}

type UpdateWeightsRequest struct {
	Weights *match.WeightMap `json:"weights"`
}
