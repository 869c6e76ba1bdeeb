package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"jobfit/internal/config"
	dbpostgres "jobfit/internal/database/postgres"
	"jobfit/internal/database/seeder"
	"jobfit/internal/domain/job"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store a profile and its saved job postings",
	Long:  "Store a profile JSON file and, with --jobs, a JSON array of postings saved for it. Prints the profile ID to use as user_id.",
	RunE:  runSeed,
}

var (
	seedProfile string
	seedJobs    string
)

func init() {
	seedCmd.Flags().StringVarP(&seedProfile, "profile", "p", "", "Path to profile JSON (required)")
	seedCmd.Flags().StringVar(&seedJobs, "jobs", "", "Path to a JSON array of job postings")
	_ = seedCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	prof, err := readProfile(seedProfile)
	if err != nil {
		return err
	}
	var posts []job.Posting
	if seedJobs != "" {
		if posts, err = readPostings(seedJobs); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	profSeeder := seeder.ProfileSeeder{Profile: &prof}
	if err := (seeder.Runner{Seeders: []seeder.Seeder{profSeeder}, Logger: logger}).Run(ctx, db); err != nil {
		return err
	}
	jobsSeeder := seeder.JobPostingsSeeder{UserID: prof.ID, Postings: posts}
	if err := (seeder.Runner{Seeders: []seeder.Seeder{jobsSeeder}, Logger: logger}).Run(ctx, db); err != nil {
		return err
	}

	ids := make([]string, 0, len(posts))
	for _, p := range jobsSeeder.Postings {
		ids = append(ids, p.ID.String())
	}
	return writeOutput(cmd, map[string]any{"user_id": prof.ID, "job_ids": ids})
}
