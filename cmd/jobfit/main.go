// Command jobfit scores profiles against job postings from local JSON files
// and runs database migrations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	outputFile  string
	compact     bool
)

var rootCmd = &cobra.Command{
	Use:           "jobfit",
	Short:         "Job match scoring tools",
	Long:          "jobfit scores a candidate profile against job postings, reports skill gaps and trends, and manages the match store schema.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a catalog YAML file (defaults to the embedded catalog)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "out", "o", "", "Write JSON output to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "Emit compact JSON")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
