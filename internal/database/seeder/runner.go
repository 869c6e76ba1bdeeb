package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"jobfit/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *slog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if err := EnsureSchema(ctx, db, storeColumns); err != nil {
		return err
	}

	log := r.Logger
	if log == nil {
		log = slog.Default()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seed applied", "component", "seeder", "seeder", s.Name())
	}
	return nil
}
