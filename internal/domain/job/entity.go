package job

import (
	"strings"

	"github.com/google/uuid"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

// Normalize lowercases the mode and folds common spellings ("on-site", "office").
func (m WorkMode) Normalize() WorkMode {
	s := strings.ToLower(strings.TrimSpace(string(m)))
	switch s {
	case "on-site", "on site", "office", "in-office", "in office":
		return WorkModeOnsite
	case "fully remote", "remote-first", "remote first":
		return WorkModeRemote
	}
	return WorkMode(s)
}

type Salary struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

// Posting is the read-only job record the engine scores against.
type Posting struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Company      string    `json:"company" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	Location     string    `json:"location,omitempty"`
	Salary       *Salary   `json:"salary,omitempty"`
	WorkMode     WorkMode  `json:"work_mode,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
}

// IsRemote reports whether the posting is fully remote, either by mode or by location text.
func (p Posting) IsRemote() bool {
	if p.WorkMode.Normalize() == WorkModeRemote {
		return true
	}
	loc := strings.ToLower(p.Location)
	return strings.Contains(loc, "remote") && !strings.Contains(loc, "hybrid")
}

// Text joins every free-text field of the posting.
func (p Posting) Text() string {
	parts := make([]string, 0, len(p.Requirements)+2)
	if t := strings.TrimSpace(p.Title); t != "" {
		parts = append(parts, t)
	}
	if d := strings.TrimSpace(p.Description); d != "" {
		parts = append(parts, d)
	}
	for _, r := range p.Requirements {
		if r = strings.TrimSpace(r); r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, "\n")
}
