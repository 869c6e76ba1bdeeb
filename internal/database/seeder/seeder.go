// Package seeder loads profiles and job postings into the match store, for
// demos and local development.
package seeder

import (
	"context"

	"jobfit/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
