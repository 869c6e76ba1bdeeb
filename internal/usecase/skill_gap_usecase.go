package usecase

import (
	"context"
	"log/slog"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/skill"
	"jobfit/internal/repository"

	"github.com/google/uuid"
)

type SkillGapUsecase interface {
	Analyze(ctx context.Context, userID, jobID uuid.UUID) (skill.GapReport, error)
	AnalyzeSkills(ctx context.Context, skills []skill.UserSkill, p job.Posting) (skill.GapReport, error)
}

type SkillGap struct {
	loader
	engine *matching.Engine
}

func NewSkillGapUsecase(engine *matching.Engine, profiles repository.ProfileRepository, jobs repository.JobPostingRepository, logger *slog.Logger) *SkillGap {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillGap{loader: loader{profiles: profiles, jobs: jobs, log: logger}, engine: engine}
}

func (u *SkillGap) Analyze(ctx context.Context, userID, jobID uuid.UUID) (skill.GapReport, error) {
	if userID == uuid.Nil || jobID == uuid.Nil {
		return skill.GapReport{}, invalid("user_id and job_id are required")
	}
	prof, post, err := u.pair(ctx, userID, jobID)
	if err != nil {
		return skill.GapReport{}, err
	}
	return u.engine.AnalyzeGaps(prof.Skills, post), nil
}

// AnalyzeSkills runs gap analysis on caller-supplied skills and posting.
func (u *SkillGap) AnalyzeSkills(_ context.Context, skills []skill.UserSkill, p job.Posting) (skill.GapReport, error) {
	if err := checkUserSkills(skills); err != nil {
		return skill.GapReport{}, err
	}
	p, err := preparePosting(p)
	if err != nil {
		return skill.GapReport{}, err
	}
	return u.engine.AnalyzeGaps(skills, p), nil
}
