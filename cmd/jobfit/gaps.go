package main

import (
	"fmt"

	"jobfit/internal/usecase"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Report skill gaps between a profile and a job posting",
	RunE:  runGaps,
}

var (
	gapsProfile string
	gapsJob     string
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsProfile, "profile", "p", "", "Path to profile JSON (required)")
	gapsCmd.Flags().StringVarP(&gapsJob, "job", "j", "", "Path to job posting JSON (required)")
	_ = gapsCmd.MarkFlagRequired("profile")
	_ = gapsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, _ []string) error {
	prof, err := readProfile(gapsProfile)
	if err != nil {
		return err
	}
	post, err := readPosting(gapsJob)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	report, err := usecase.NewSkillGapUsecase(engine, nil, nil, nil).AnalyzeSkills(cmd.Context(), prof.Skills, post)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}
	return writeOutput(cmd, report)
}
