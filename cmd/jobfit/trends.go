package main

import (
	"fmt"

	"jobfit/internal/domain/skill"
	"jobfit/internal/usecase"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Report skill demand across job postings",
	Long:  "Report which skills a set of postings ask for most. With --profile, skills the candidate lacks are flagged.",
	RunE:  runTrends,
}

var (
	trendsProfile string
	trendsJobs    string
)

func init() {
	trendsCmd.Flags().StringVarP(&trendsProfile, "profile", "p", "", "Path to profile JSON")
	trendsCmd.Flags().StringVar(&trendsJobs, "jobs", "", "Path to a JSON array of job postings (required)")
	_ = trendsCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	posts, err := readPostings(trendsJobs)
	if err != nil {
		return err
	}
	var skills []skill.UserSkill
	if trendsProfile != "" {
		prof, err := readProfile(trendsProfile)
		if err != nil {
			return err
		}
		skills = prof.Skills
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	report, err := usecase.NewTrendsUsecase(engine, nil, nil, nil).AnalyzeSkills(cmd.Context(), skills, posts)
	if err != nil {
		return fmt.Errorf("trend analysis failed: %w", err)
	}
	return writeOutput(cmd, report)
}
