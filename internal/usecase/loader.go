package usecase

import (
	"context"
	"errors"
	"log/slog"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/user"
	"jobfit/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// loader reads profiles and postings and maps store errors onto usecase errors.
type loader struct {
	profiles repository.ProfileRepository
	jobs     repository.JobPostingRepository
	log      *slog.Logger
}

func (l loader) internal(op string, err error, attrs ...any) error {
	l.log.Error(op+" failed", append(attrs, "error", err)...)
	return ErrInternal
}

func (l loader) profile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, err := l.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, l.internal("load profile", err, "user_id", userID)
	}
	return prepareProfile(p)
}

func (l loader) posting(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	p, err := l.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, l.internal("load job", err, "job_id", jobID)
	}
	return preparePosting(p)
}

func (l loader) postings(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	list, err := l.jobs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, l.internal("list jobs", err, "user_id", userID)
	}
	out := make([]job.Posting, 0, len(list))
	for _, p := range list {
		prepared, err := preparePosting(p)
		if err != nil {
			l.log.Warn("skipping invalid job", "user_id", userID, "job_id", p.ID, "error", err)
			continue
		}
		out = append(out, prepared)
	}
	return out, nil
}

// pair loads the profile and the posting concurrently.
func (l loader) pair(ctx context.Context, userID, jobID uuid.UUID) (user.Profile, job.Posting, error) {
	var prof user.Profile
	var post job.Posting

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prof, err = l.profile(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		post, err = l.posting(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		return user.Profile{}, job.Posting{}, err
	}
	return prof, post, nil
}

// profileWithPostings loads the profile and all of the user's postings concurrently.
func (l loader) profileWithPostings(ctx context.Context, userID uuid.UUID) (user.Profile, []job.Posting, error) {
	var prof user.Profile
	var posts []job.Posting

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prof, err = l.profile(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = l.postings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return user.Profile{}, nil, err
	}
	return prof, posts, nil
}
