package seeder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"jobfit/internal/database"
)

var storeColumns = map[string][]string{
	"profiles":     {"id", "payload", "created_at", "updated_at"},
	"job_postings": {"id", "user_id", "payload", "created_at"},
}

// EnsureSchema fails when any of the given tables lacks one of its columns.
// Every missing column is reported at once.
func EnsureSchema(ctx context.Context, db database.DB, tables map[string][]string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if len(tables) == 0 {
		return nil
	}

	names := make([]string, 0, len(tables))
	for t := range tables {
		names = append(names, t)
	}
	sort.Strings(names)

	rows, err := db.Query(
		ctx,
		`SELECT table_name, column_name FROM information_schema.columns WHERE table_schema='public' AND table_name = ANY($1)`,
		names,
	)
	if err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var table, col string
		if err := rows.Scan(&table, &col); err != nil {
			return err
		}
		existing[table+"."+col] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, t := range names {
		for _, col := range tables[t] {
			if !existing[t+"."+col] {
				missing = append(missing, t+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s (run migrate first)", strings.Join(missing, ", "))
	}
	return nil
}
