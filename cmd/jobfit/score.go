package main

import (
	"fmt"

	"jobfit/internal/usecase"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job posting",
	Long:  "Score a profile JSON file against a job posting JSON file and print the match result.",
	RunE:  runScore,
}

var (
	scoreProfile string
	scoreJob     string
	scoreWeights map[string]string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to profile JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting JSON (required)")
	scoreCmd.Flags().StringToStringVarP(&scoreWeights, "weights", "w", nil, "Category weights, e.g. skills=50,experience=30,education=10,additional=10")
	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	weights, err := parseWeights(scoreWeights)
	if err != nil {
		return err
	}
	prof, err := readProfile(scoreProfile)
	if err != nil {
		return err
	}
	post, err := readPosting(scoreJob)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	uc := usecase.NewMatchingUsecase(engine, nil, nil, nil, nil, 0, nil)
	res, err := uc.Analyze(cmd.Context(), prof, post, weights)
	if err != nil {
		return fmt.Errorf("score failed: %w", err)
	}
	return writeOutput(cmd, res)
}
