package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/user"

	"github.com/spf13/cobra"
)

func newEngine() (*matching.Engine, error) {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return matching.New(cat), nil
}

func readJSON(path string, out any) error {
	if path == "" {
		return fmt.Errorf("input path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func readProfile(path string) (user.Profile, error) {
	var p user.Profile
	err := readJSON(path, &p)
	return p, err
}

func readPosting(path string) (job.Posting, error) {
	var p job.Posting
	err := readJSON(path, &p)
	return p, err
}

// readPostings accepts either a JSON array of postings or a single posting.
func readPostings(path string) ([]job.Posting, error) {
	if path == "" {
		return nil, fmt.Errorf("input path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var p job.Posting
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return []job.Posting{p}, nil
	}
	var list []job.Posting
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return list, nil
}

// parseWeights turns skills=50,experience=30 style flags into a weight map.
// Categories left out weigh zero. An empty set means default weights.
func parseWeights(raw map[string]string) (*match.WeightMap, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var w match.WeightMap
	for k, v := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %s: %w", k, err)
		}
		switch match.Category(strings.ToLower(strings.TrimSpace(k))) {
		case match.CategorySkills:
			w.Skills = f
		case match.CategoryExperience:
			w.Experience = f
		case match.CategoryEducation:
			w.Education = f
		case match.CategoryAdditional:
			w.Additional = f
		default:
			return nil, fmt.Errorf("unknown weight category %q", k)
		}
	}
	return &w, nil
}

func writeOutput(cmd *cobra.Command, v any) error {
	var w io.Writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputFile, err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
