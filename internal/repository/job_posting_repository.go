package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobfit/internal/database"
	"jobfit/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobPostingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]job.Posting, error)
}

type PostgresJobPostingRepository struct {
	db database.DB
}

func NewPostgresJobPostingRepository(db database.DB) *PostgresJobPostingRepository {
	return &PostgresJobPostingRepository{db: db}
}

func (r *PostgresJobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM job_postings WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, fmt.Errorf("find job posting %s: %w", id, err)
	}
	return decodePosting(id, raw)
}

// ListByUserID returns the user's saved postings, oldest first.
func (r *PostgresJobPostingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, payload FROM job_postings WHERE user_id = $1 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()

	out := make([]job.Posting, 0, 16)
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		p, err := decodePosting(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodePosting(id uuid.UUID, raw []byte) (job.Posting, error) {
	var p job.Posting
	if err := json.Unmarshal(raw, &p); err != nil {
		return job.Posting{}, fmt.Errorf("decode job posting %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}
