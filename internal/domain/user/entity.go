package user

import (
	"sort"
	"time"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/skill"

	"github.com/google/uuid"
)

type Employment struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   Date   `json:"start_date"`
	EndDate     *Date  `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// Months returns the tenure in whole months, counting open-ended positions up to now.
func (e Employment) Months(now time.Time) int {
	if e.StartDate.IsZero() {
		return 0
	}
	end := now
	if !e.Current && e.EndDate != nil && !e.EndDate.IsZero() {
		end = e.EndDate.Time
	}
	months := (end.Year()-e.StartDate.Year())*12 + int(end.Month()) - int(e.StartDate.Month())
	if months < 0 {
		return 0
	}
	return months
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field,omitempty"`
	GPA         *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=5"`
	GPAPrivate  bool     `json:"gpa_private,omitempty"`
	EndDate     *Date    `json:"end_date,omitempty"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// Profile is the read-only candidate record the engine scores.
type Profile struct {
	ID                 uuid.UUID         `json:"id"`
	Headline           string            `json:"headline,omitempty"`
	Skills             []skill.UserSkill `json:"skills" validate:"dive"`
	Employment         []Employment      `json:"employment" validate:"dive"`
	Education          []Education       `json:"education" validate:"dive"`
	Projects           []Project         `json:"projects,omitempty"`
	Certifications     []Certification   `json:"certifications,omitempty"`
	Location           string            `json:"location,omitempty"`
	ExperienceLevel    string            `json:"experience_level,omitempty"`
	PreferredWorkModes []job.WorkMode    `json:"preferred_work_modes,omitempty"`
}

// TotalMonths sums employment tenure across all positions.
func (p Profile) TotalMonths(now time.Time) int {
	total := 0
	for _, e := range p.Employment {
		total += e.Months(now)
	}
	return total
}

func (p Profile) TotalYears(now time.Time) float64 {
	return float64(p.TotalMonths(now)) / 12.0
}

// RecentEmployment returns positions ordered by start date, newest first.
func (p Profile) RecentEmployment() []Employment {
	out := make([]Employment, len(p.Employment))
	copy(out, p.Employment)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current
		}
		return out[i].StartDate.After(out[j].StartDate.Time)
	})
	return out
}
