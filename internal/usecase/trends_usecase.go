package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/skill"
	"jobfit/internal/repository"

	"github.com/google/uuid"
)

type TrendsUsecase interface {
	Analyze(ctx context.Context, userID uuid.UUID) (skill.TrendReport, error)
	AnalyzeSkills(ctx context.Context, skills []skill.UserSkill, posts []job.Posting) (skill.TrendReport, error)
}

type Trends struct {
	loader
	engine *matching.Engine
}

func NewTrendsUsecase(engine *matching.Engine, profiles repository.ProfileRepository, jobs repository.JobPostingRepository, logger *slog.Logger) *Trends {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trends{loader: loader{profiles: profiles, jobs: jobs, log: logger}, engine: engine}
}

// Analyze reports skill demand across the user's saved postings.
func (u *Trends) Analyze(ctx context.Context, userID uuid.UUID) (skill.TrendReport, error) {
	if userID == uuid.Nil {
		return skill.TrendReport{}, invalid("user_id is required")
	}
	prof, posts, err := u.profileWithPostings(ctx, userID)
	if err != nil {
		return skill.TrendReport{}, err
	}
	return u.engine.AnalyzeTrends(posts, prof.Skills), nil
}

// AnalyzeSkills reports skill demand across caller-supplied postings.
func (u *Trends) AnalyzeSkills(_ context.Context, skills []skill.UserSkill, posts []job.Posting) (skill.TrendReport, error) {
	if err := checkUserSkills(skills); err != nil {
		return skill.TrendReport{}, err
	}
	prepared := make([]job.Posting, 0, len(posts))
	for i, p := range posts {
		p, err := preparePosting(p)
		if err != nil {
			return skill.TrendReport{}, fmt.Errorf("job %d: %w", i, err)
		}
		prepared = append(prepared, p)
	}
	return u.engine.AnalyzeTrends(prepared, skills), nil
}
