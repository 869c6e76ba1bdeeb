package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobfit/internal/database"
	"jobfit/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MatchRepository interface {
	// Upsert stores r keyed by (profile, job) and returns the persisted id,
	// which is the existing row's id when the pair was matched before.
	Upsert(ctx context.Context, r match.Result) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (match.Result, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]match.Result, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, res match.Result) (uuid.UUID, error) {
	if res.ProfileID == uuid.Nil || res.JobID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("upsert match: profile and job ids are required")
	}
	id := res.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	res.ID = id

	matchedAt := res.Metadata.CalculatedAt
	if matchedAt.IsZero() {
		matchedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode match: %w", err)
	}

	var stored uuid.UUID
	err = r.db.QueryRow(ctx,
		`INSERT INTO job_matches (id, user_id, job_id, overall_score, result, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			result = jsonb_set(EXCLUDED.result, '{id}', to_jsonb(job_matches.id::text)),
			matched_at = EXCLUDED.matched_at
		 RETURNING id`,
		id,
		res.ProfileID,
		res.JobID,
		res.OverallScore,
		payload,
		matchedAt,
	).Scan(&stored)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert match: %w", err)
	}
	return stored, nil
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (match.Result, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT result FROM job_matches WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Result{}, ErrNotFound
		}
		return match.Result{}, fmt.Errorf("find match %s: %w", id, err)
	}
	return decodeResult(id, raw)
}

// ListByUserID returns stored results for userID, best score first.
func (r *PostgresMatchRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]match.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, result FROM job_matches WHERE user_id = $1 ORDER BY overall_score DESC, matched_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	out := make([]match.Result, 0, 16)
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		res, err := decodeResult(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeResult(id uuid.UUID, raw []byte) (match.Result, error) {
	var res match.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return match.Result{}, fmt.Errorf("decode match %s: %w", id, err)
	}
	res.ID = id
	return res, nil
}
