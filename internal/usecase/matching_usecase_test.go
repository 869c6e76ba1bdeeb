package usecase

import (
	"context"
	"testing"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatching_CalculateMatch_InvalidInput(t *testing.T) {
	f := newFixture(t)
	uc := f.matching()

	_, err := uc.CalculateMatch(context.Background(), uuid.Nil, f.jobIDs[0], nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CalculateMatch(context.Background(), f.userID, f.jobIDs[0], &match.WeightMap{Skills: -1, Experience: 50})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CalculateMatch(context.Background(), f.userID, f.jobIDs[0], &match.WeightMap{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, match.ErrInvalidWeights)
}

func TestMatching_CalculateMatch_NotFound(t *testing.T) {
	f := newFixture(t)
	uc := f.matching()

	_, err := uc.CalculateMatch(context.Background(), uuid.New(), f.jobIDs[0], nil)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = uc.CalculateMatch(context.Background(), f.userID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMatching_CalculateMatch_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.profiles.err = errStore
	_, err := f.matching().CalculateMatch(context.Background(), f.userID, f.jobIDs[0], nil)
	assert.ErrorIs(t, err, ErrInternal)

	f = newFixture(t)
	f.matches.err = errStore
	_, err = f.matching().CalculateMatch(context.Background(), f.userID, f.jobIDs[0], nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMatching_CalculateMatch_PersistsAndCaches(t *testing.T) {
	f := newFixture(t)
	uc := f.matching()
	ctx := context.Background()

	res, err := uc.CalculateMatch(ctx, f.userID, f.jobIDs[0], nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, f.userID, res.ProfileID)
	assert.Equal(t, f.jobIDs[0], res.JobID)
	assert.Equal(t, "Senior Go Engineer", res.Metadata.JobTitle)
	assert.Nil(t, res.CustomWeights)
	assert.Equal(t, 1, f.matches.upserts)

	again, err := uc.CalculateMatch(ctx, f.userID, f.jobIDs[0], nil)
	require.NoError(t, err)
	assert.Equal(t, res.ID, again.ID)
	assert.Equal(t, res.OverallScore, again.OverallScore)
	assert.Equal(t, 1, f.matches.upserts, "second call is served from cache")

	custom := match.WeightMap{Skills: 1, Experience: 1, Education: 1, Additional: 1}
	reweighted, err := uc.CalculateMatch(ctx, f.userID, f.jobIDs[0], &custom)
	require.NoError(t, err)
	assert.Equal(t, 2, f.matches.upserts)
	assert.Equal(t, res.ID, reweighted.ID, "same pair keeps its id")
	require.NotNil(t, reweighted.CustomWeights)
	assert.InDelta(t, 25, reweighted.Metadata.Weights.Skills, 1e-9)
}

func TestMatching_CalculateMatch_FlattensHTML(t *testing.T) {
	f := newFixture(t)
	res, err := f.matching().CalculateMatch(context.Background(), f.userID, f.jobIDs[0], nil)
	require.NoError(t, err)

	matched := make([]string, 0)
	for _, m := range res.CategoryScores.Skills.Details.Matched {
		matched = append(matched, m.Name)
	}
	assert.Contains(t, matched, "Go")
	assert.Contains(t, matched, "PostgreSQL")
}

func TestMatching_Analyze_Stateless(t *testing.T) {
	f := newFixture(t)
	uc := f.matching()
	prof, err := f.profiles.FindByID(context.Background(), f.userID)
	require.NoError(t, err)

	res, err := uc.Analyze(context.Background(), prof, job.Posting{
		Title:        "Go Developer",
		Company:      "Acme",
		Requirements: []string{"Go", "PostgreSQL"},
		WorkMode:     "Remote",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, res.ID)
	assert.Zero(t, f.matches.upserts)
	assert.GreaterOrEqual(t, res.OverallScore, 0)
	assert.LessOrEqual(t, res.OverallScore, 100)

	_, err = uc.Analyze(context.Background(), prof, job.Posting{Company: "Acme"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Analyze(context.Background(), prof, job.Posting{Title: "x", Company: "y", WorkMode: "sometimes"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatching_RecalculateWeights(t *testing.T) {
	f := newFixture(t)
	uc := f.matching()
	ctx := context.Background()

	_, err := uc.RecalculateWeights(ctx, uuid.New(), match.DefaultWeights())
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = uc.RecalculateWeights(ctx, uuid.Nil, match.DefaultWeights())
	assert.ErrorIs(t, err, ErrInvalidInput)

	res, err := uc.CalculateMatch(ctx, f.userID, f.jobIDs[0], nil)
	require.NoError(t, err)

	_, err = uc.RecalculateWeights(ctx, res.ID, match.WeightMap{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	onlySkills := match.WeightMap{Skills: 1}
	out, err := uc.RecalculateWeights(ctx, res.ID, onlySkills)
	require.NoError(t, err)
	assert.Equal(t, res.ID, out.ID)
	assert.Equal(t, res.CategoryScores.Skills.Score, out.OverallScore)
	assert.Equal(t, match.GradeFor(out.OverallScore), out.Metadata.Grade)
	require.NotNil(t, out.CustomWeights)
	assert.Equal(t, onlySkills, *out.CustomWeights)
	assert.Contains(t, f.cache.deleted, userMatchPattern(f.userID))

	stored, err := f.matches.FindByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, out.OverallScore, stored.OverallScore)
}
