package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/skill"
	"jobfit/internal/domain/user"
)

func scorers(t *testing.T) *Scorers {
	t.Helper()
	cat := defaultCatalog(t)
	ex := NewExtractor(cat)
	return NewScorers(cat, ex, NewGapAnalyzer(cat))
}

func ptr[T any](v T) *T { return &v }

func TestScoreSkills(t *testing.T) {
	s := scorers(t)
	posting := job.Posting{Title: "Frontend Engineer", Requirements: []string{"JavaScript required", "React required"}}

	tests := []struct {
		name   string
		skills []skill.UserSkill
		want   int
	}{
		{"half of required", []skill.UserSkill{{Name: "JavaScript", Level: skill.LevelAdvanced}}, 65},
		{"weak penalty", []skill.UserSkill{{Name: "JavaScript", Level: skill.LevelAdvanced}, {Name: "React", Level: skill.LevelBeginner}}, 60},
		{"all matched", []skill.UserSkill{{Name: "javascript", Level: skill.LevelExpert}, {Name: "react", Level: skill.LevelIntermediate}}, 100},
		{"none matched", nil, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ScoreSkills(posting, user.Profile{Skills: tt.skills})
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, 2, got.Details.RequiredTotal)
		})
	}
}

func TestScoreSkillsZeroWithoutExtractedSkills(t *testing.T) {
	s := scorers(t)
	prof := user.Profile{Skills: []skill.UserSkill{{Name: "Go", Level: skill.LevelExpert}}}

	got := s.ScoreSkills(job.Posting{Title: "Barista", Company: "Cafe", Description: "Make great coffee."}, prof)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 0, got.Details.Total)
}

func TestScoreSkillsNeverNegative(t *testing.T) {
	s := scorers(t)
	posting := job.Posting{
		Requirements: []string{"Go required"},
		Description:  "Docker, Kubernetes, Terraform, Helm, Ansible would help",
	}
	prof := user.Profile{Skills: []skill.UserSkill{
		{Name: "Docker", Level: skill.LevelBeginner},
		{Name: "Kubernetes", Level: skill.LevelBeginner},
		{Name: "Terraform", Level: skill.LevelBeginner},
		{Name: "Helm", Level: skill.LevelBeginner},
		{Name: "Ansible", Level: skill.LevelBeginner},
	}}

	got := s.ScoreSkills(posting, prof)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 5, got.Details.WeakCount)
}

func TestScoreExperienceEmptyHistory(t *testing.T) {
	got := scorers(t).ScoreExperience(job.Posting{Title: "Senior Engineer", Requirements: []string{"5+ years"}}, user.Profile{}, fixedNow)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 5, got.Details.RequiredYears)
	assert.NotNil(t, got.Details.RelevantPositions)
}

func TestScoreExperienceFullMatch(t *testing.T) {
	posting := job.Posting{Title: "Senior Backend Engineer", Requirements: []string{"5+ years of experience with Go"}}
	prof := user.Profile{Employment: []user.Employment{employment("Backend Engineer", "Acme", 2019, time.January, true)}}

	got := scorers(t).ScoreExperience(posting, prof, fixedNow)

	assert.Equal(t, 100, got.Score)
	d := got.Details
	assert.Equal(t, 5, d.RequiredYears)
	assert.True(t, d.YearsMet)
	assert.Equal(t, 6.0, d.TotalYears)
	assert.Equal(t, "senior", d.JobSeniority)
	assert.Equal(t, "senior", d.UserSeniority)
	assert.True(t, d.SeniorityMatch)
	require.Len(t, d.RelevantPositions, 1)
	assert.Equal(t, "high", string(d.RelevantPositions[0].Relevance))
}

func TestScoreExperiencePartialYears(t *testing.T) {
	posting := job.Posting{Title: "Staff Engineer", Requirements: []string{"10+ years building systems"}}
	prof := user.Profile{Employment: []user.Employment{employment("Barista", "Cafe", 2023, time.January, true)}}

	got := scorers(t).ScoreExperience(posting, prof, fixedNow)

	// 50 base + 30*2/10 years + 5 for a long low-relevance position.
	assert.Equal(t, 61, got.Score)
	assert.False(t, got.Details.YearsMet)
	assert.Equal(t, "lead", got.Details.JobSeniority)
	assert.Equal(t, "mid", got.Details.UserSeniority)
	assert.False(t, got.Details.SeniorityMatch)
}

func TestScoreExperienceIndustryBonus(t *testing.T) {
	posting := job.Posting{Title: "Analyst", Industry: "Fintech"}
	e := employment("Clerk", "Paylater", 2024, time.December, true)
	e.Description = "Worked at a fintech startup"
	prof := user.Profile{Employment: []user.Employment{e}}

	got := scorers(t).ScoreExperience(posting, prof, fixedNow)

	assert.True(t, got.Details.IndustryMatch)
	assert.Empty(t, got.Details.RelevantPositions)
}

func TestUserSeniorityFallbacks(t *testing.T) {
	recent := user.Profile{Employment: []user.Employment{
		employment("Engineer", "B", 2022, time.January, true),
		employment("Lead Developer", "A", 2018, time.January, false),
		employment("Director", "Old", 2010, time.January, false),
	}}
	assert.Equal(t, SeniorityLead, userSeniority(recent, 10))

	stated := user.Profile{Employment: []user.Employment{employment("Engineer", "B", 2022, time.January, true)}, ExperienceLevel: "Senior"}
	assert.Equal(t, SenioritySenior, userSeniority(stated, 3))

	byYears := user.Profile{Employment: []user.Employment{employment("Engineer", "B", 2022, time.January, true)}}
	assert.Equal(t, SeniorityMid, userSeniority(byYears, 3))
}

func TestJobSeniority(t *testing.T) {
	assert.Equal(t, SeniorityExecutive, jobSeniority("VP of Engineering", 0))
	assert.Equal(t, SeniorityLead, jobSeniority("Senior Engineering Manager", 0))
	assert.Equal(t, SeniorityEntry, jobSeniority("Junior Developer", 0))
	assert.Equal(t, SeniorityMid, jobSeniority("Developer", 0))
	assert.Equal(t, SeniorityEntry, jobSeniority("Developer", 1))
	assert.Equal(t, SenioritySenior, jobSeniority("Developer", 6))
	assert.Equal(t, SeniorityLead, jobSeniority("Developer", 9))
}

func TestScoreEducation(t *testing.T) {
	s := scorers(t)
	posting := job.Posting{Requirements: []string{"Bachelor's degree in Computer Science, Master's preferred"}}

	t.Run("empty education", func(t *testing.T) {
		got := s.ScoreEducation(posting, user.Profile{})
		assert.Equal(t, 40, got.Score)
		assert.Equal(t, "bachelor", got.Details.RequiredDegree)
	})

	t.Run("meets everything", func(t *testing.T) {
		prof := user.Profile{Education: []user.Education{{Degree: "BSc", Field: "Computer Science", GPA: ptr(3.8)}}}
		got := s.ScoreEducation(posting, prof)
		assert.Equal(t, 100, got.Score)
		assert.True(t, got.Details.DegreeMet)
		assert.True(t, got.Details.FieldMet)
		assert.Equal(t, 20, got.Details.GPABonus)
	})

	t.Run("degree and field unmet with private gpa", func(t *testing.T) {
		prof := user.Profile{Education: []user.Education{{Degree: "Associate of Arts", Field: "History", GPA: ptr(3.9), GPAPrivate: true}}}
		got := s.ScoreEducation(posting, prof)
		assert.Equal(t, 30, got.Score)
		assert.False(t, got.Details.DegreeMet)
		assert.False(t, got.Details.FieldMet)
		assert.Nil(t, got.Details.GPA)
	})

	t.Run("no stated requirement", func(t *testing.T) {
		prof := user.Profile{Education: []user.Education{{Degree: "High School"}}}
		got := s.ScoreEducation(job.Posting{Title: "Barista"}, prof)
		assert.Equal(t, 100, got.Score)
	})
}

func TestRequiredDegreeIsLowestMentioned(t *testing.T) {
	assert.Equal(t, degreeBachelor, requiredDegree("Master's or Bachelor's degree"))
	assert.Equal(t, degreePhD, requiredDegree("PhD in Physics"))
	assert.Equal(t, degreeNone, requiredDegree("Certified Scrum Master a plus"))
}

func TestGPABonusTiers(t *testing.T) {
	assert.Equal(t, 20, gpaBonus(3.7))
	assert.Equal(t, 15, gpaBonus(3.5))
	assert.Equal(t, 10, gpaBonus(3.0))
	assert.Equal(t, 0, gpaBonus(2.9))
}

func TestScoreAdditional(t *testing.T) {
	s := scorers(t)

	t.Run("remote job with extras", func(t *testing.T) {
		prof := user.Profile{
			Certifications: []user.Certification{{Name: "CKA"}, {Name: "AWS SAA"}},
			Projects:       []user.Project{{Name: "jobfit"}},
		}
		got := s.ScoreAdditional(job.Posting{WorkMode: job.WorkModeRemote}, prof, fixedNow)
		assert.Equal(t, 100, got.Score)
		assert.True(t, got.Details.LocationMatch)
	})

	t.Run("nothing matches", func(t *testing.T) {
		posting := job.Posting{Location: "Berlin, Germany", WorkMode: job.WorkModeOnsite, Salary: &job.Salary{Min: 30000, Max: 40000}}
		prof := user.Profile{Location: "Paris, France", PreferredWorkModes: []job.WorkMode{job.WorkModeRemote}}
		got := s.ScoreAdditional(posting, prof, fixedNow)
		assert.Equal(t, 50, got.Score)
		assert.False(t, got.Details.LocationMatch)
		assert.False(t, got.Details.WorkModeMatch)
		assert.False(t, got.Details.SalaryMatch)
		assert.Equal(t, 40000, got.Details.ExpectedMinSalary)
	})

	t.Run("caps bonuses", func(t *testing.T) {
		prof := user.Profile{
			Location:       "San Francisco, CA",
			Certifications: make([]user.Certification, 10),
			Projects:       make([]user.Project, 10),
		}
		got := s.ScoreAdditional(job.Posting{Location: "Chicago, IL", WorkMode: job.WorkModeOnsite}, prof, fixedNow)
		// 50 + 25 work mode + 20 salary + 15 + 15, location misses.
		assert.Equal(t, 100, got.Score)
		assert.False(t, got.Details.LocationMatch)
	})
}

func TestLocationMatches(t *testing.T) {
	assert.True(t, locationMatches(job.Posting{Location: "Remote (US)"}, "Lisbon"))
	assert.True(t, locationMatches(job.Posting{}, ""))
	assert.True(t, locationMatches(job.Posting{Location: "Jakarta, Indonesia"}, "South Jakarta, Jakarta"))
	assert.False(t, locationMatches(job.Posting{Location: "Chicago, IL"}, "San Francisco, CA"))
	assert.False(t, locationMatches(job.Posting{Location: "Hybrid - Remote, London"}, ""))
}
