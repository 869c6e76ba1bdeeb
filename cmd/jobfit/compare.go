package main

import (
	"fmt"

	"jobfit/internal/domain/match"
	"jobfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score a profile against several postings and rank them",
	RunE:  runCompare,
}

var (
	compareProfile string
	compareJobs    string
	compareWeights map[string]string
)

func init() {
	compareCmd.Flags().StringVarP(&compareProfile, "profile", "p", "", "Path to profile JSON (required)")
	compareCmd.Flags().StringVar(&compareJobs, "jobs", "", "Path to a JSON array of job postings (required)")
	compareCmd.Flags().StringToStringVarP(&compareWeights, "weights", "w", nil, "Category weights, e.g. skills=50,experience=30")
	_ = compareCmd.MarkFlagRequired("profile")
	_ = compareCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	weights, err := parseWeights(compareWeights)
	if err != nil {
		return err
	}
	prof, err := readProfile(compareProfile)
	if err != nil {
		return err
	}
	posts, err := readPostings(compareJobs)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	uc := usecase.NewMatchingUsecase(engine, nil, nil, nil, nil, 0, nil)
	results := make([]match.Result, 0, len(posts))
	for i, p := range posts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		res, err := uc.Analyze(cmd.Context(), prof, p, weights)
		if err != nil {
			return fmt.Errorf("job %d (%s): %w", i, p.Title, err)
		}
		res.ID = uuid.New()
		results = append(results, res)
	}
	return writeOutput(cmd, engine.CompareMatches(results))
}
