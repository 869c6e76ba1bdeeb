package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"jobfit/internal/database"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/user"

	"github.com/google/uuid"
)

// ProfileSeeder upserts one profile. A nil ID is replaced with a new one.
type ProfileSeeder struct {
	Profile *user.Profile
}

func (ProfileSeeder) Name() string { return "profiles" }

func (s ProfileSeeder) Run(ctx context.Context, db database.DB) error {
	if s.Profile == nil {
		return nil
	}
	if s.Profile.ID == uuid.Nil {
		s.Profile.ID = uuid.New()
	}
	payload, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO profiles (id, payload) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.Profile.ID, payload,
	)
	return err
}

// JobPostingsSeeder saves postings for one user in a single transaction.
type JobPostingsSeeder struct {
	UserID   uuid.UUID
	Postings []job.Posting
}

func (JobPostingsSeeder) Name() string { return "job_postings" }

func (s JobPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if s.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if len(s.Postings) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i := range s.Postings {
		p := &s.Postings[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		payload, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode job %d: %w", i, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO job_postings (id, user_id, payload) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`,
			p.ID, s.UserID, payload,
		); err != nil {
			return fmt.Errorf("insert job %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
