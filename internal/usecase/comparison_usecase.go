package usecase

import (
	"context"
	"log/slog"

	"jobfit/internal/domain/match"
	"jobfit/internal/domain/matching"
	"jobfit/internal/repository"

	"github.com/google/uuid"
)

type ComparisonUsecase interface {
	Compare(ctx context.Context, userID uuid.UUID) (match.Comparison, error)
}

type Comparison struct {
	engine  *matching.Engine
	matches repository.MatchRepository
	log     *slog.Logger
}

func NewComparisonUsecase(engine *matching.Engine, matches repository.MatchRepository, logger *slog.Logger) *Comparison {
	if logger == nil {
		logger = slog.Default()
	}
	return &Comparison{engine: engine, matches: matches, log: logger}
}

// Compare ranks every stored result of the user.
func (u *Comparison) Compare(ctx context.Context, userID uuid.UUID) (match.Comparison, error) {
	if userID == uuid.Nil {
		return match.Comparison{}, invalid("user_id is required")
	}
	results, err := u.matches.ListByUserID(ctx, userID)
	if err != nil {
		u.log.Error("list matches failed", "user_id", userID, "error", err)
		return match.Comparison{}, ErrInternal
	}
	return u.engine.CompareMatches(results), nil
}
