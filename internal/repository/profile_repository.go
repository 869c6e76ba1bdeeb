package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobfit/internal/database"
	"jobfit/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (user.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (user.Profile, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM profiles WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrNotFound
		}
		return user.Profile{}, fmt.Errorf("find profile %s: %w", id, err)
	}

	var p user.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return user.Profile{}, fmt.Errorf("decode profile %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}
