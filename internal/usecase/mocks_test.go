package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"testing"
	"time"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
	"jobfit/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

type mockProfiles struct {
	m   map[uuid.UUID]user.Profile
	err error
}

func (r mockProfiles) FindByID(_ context.Context, id uuid.UUID) (user.Profile, error) {
	if r.err != nil {
		return user.Profile{}, r.err
	}
	p, ok := r.m[id]
	if !ok {
		return user.Profile{}, repository.ErrNotFound
	}
	p.ID = id
	return p, nil
}

type mockJobs struct {
	m      map[uuid.UUID]job.Posting
	byUser map[uuid.UUID][]uuid.UUID
	err    error
}

func (r mockJobs) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if r.err != nil {
		return job.Posting{}, r.err
	}
	p, ok := r.m[id]
	if !ok {
		return job.Posting{}, repository.ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r mockJobs) ListByUserID(_ context.Context, userID uuid.UUID) ([]job.Posting, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]job.Posting, 0)
	for _, id := range r.byUser[userID] {
		p := r.m[id]
		p.ID = id
		out = append(out, p)
	}
	return out, nil
}

type mockMatches struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]match.Result
	byPair  map[[2]uuid.UUID]uuid.UUID
	upserts int
	err     error
}

func newMockMatches() *mockMatches {
	return &mockMatches{byID: map[uuid.UUID]match.Result{}, byPair: map[[2]uuid.UUID]uuid.UUID{}}
}

func (r *mockMatches) Upsert(_ context.Context, res match.Result) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.upserts++
	pair := [2]uuid.UUID{res.ProfileID, res.JobID}
	id, ok := r.byPair[pair]
	if !ok {
		id = uuid.New()
		r.byPair[pair] = id
	}
	res.ID = id
	r.byID[id] = res
	return id, nil
}

func (r *mockMatches) FindByID(_ context.Context, id uuid.UUID) (match.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return match.Result{}, repository.ErrNotFound
	}
	return res, nil
}

func (r *mockMatches) ListByUserID(_ context.Context, userID uuid.UUID) ([]match.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]match.Result, 0)
	for _, res := range r.byID {
		if res.ProfileID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

type mockCache struct {
	mu        sync.Mutex
	data      map[string][]byte
	available bool
	deleted   []string
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}, available: true}
}

func (c *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *mockCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.data, k)
		}
	}
	c.deleted = append(c.deleted, pattern)
	return nil
}

func (c *mockCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}

func (c *mockCache) Available() bool { return c.available }

var errStore = errors.New("connection reset")

type fixture struct {
	userID   uuid.UUID
	jobIDs   []uuid.UUID
	profiles mockProfiles
	jobs     mockJobs
	matches  *mockMatches
	cache    *mockCache
	engine   *matching.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)

	userID := uuid.New()
	gpa := 3.6
	prof := user.Profile{
		Headline: "Backend engineer",
		Skills: []skill.UserSkill{
			{Name: "Go", Level: skill.LevelExpert},
			{Name: "PostgreSQL", Level: skill.LevelAdvanced},
			{Name: "Docker", Level: skill.LevelBeginner},
		},
		Employment: []user.Employment{{
			Title:     "Senior Backend Engineer",
			Company:   "Acme",
			StartDate: user.NewDate(2019, time.March),
			Current:   true,
		}},
		Education: []user.Education{{Institution: "ITB", Degree: "Bachelor of Science", Field: "Computer Science", GPA: &gpa}},
		Location:  "Jakarta, Indonesia",
		PreferredWorkModes: []job.WorkMode{"Remote"},
	}

	postings := []job.Posting{
		{
			Title:        "Senior Go Engineer",
			Company:      "Globex",
			Description:  "<p>We build payment APIs with <b>Go</b> and PostgreSQL.</p><ul><li>Kubernetes is a plus</li></ul>",
			Requirements: []string{"5+ years of experience with Go", "Experience with Docker"},
			Location:     "Jakarta",
			WorkMode:     "remote",
		},
		{
			Title:        "Frontend Developer",
			Company:      "Initech",
			Requirements: []string{"3 years with React and TypeScript"},
			WorkMode:     "on-site",
		},
		{
			Title:        "Platform Engineer",
			Company:      "Hooli",
			Requirements: []string{"Kubernetes", "Terraform", "Go"},
		},
	}

	jobs := mockJobs{m: map[uuid.UUID]job.Posting{}, byUser: map[uuid.UUID][]uuid.UUID{}}
	ids := make([]uuid.UUID, 0, len(postings))
	for _, p := range postings {
		id := uuid.New()
		jobs.m[id] = p
		jobs.byUser[userID] = append(jobs.byUser[userID], id)
		ids = append(ids, id)
	}

	return &fixture{
		userID:   userID,
		jobIDs:   ids,
		profiles: mockProfiles{m: map[uuid.UUID]user.Profile{userID: prof}},
		jobs:     jobs,
		matches:  newMockMatches(),
		cache:    newMockCache(),
		engine:   matching.New(cat, matching.WithClock(func() time.Time { return fixedNow })),
	}
}

func (f *fixture) matching() *Matching {
	return NewMatchingUsecase(f.engine, f.profiles, f.jobs, f.matches, f.cache, time.Minute, nil)
}
