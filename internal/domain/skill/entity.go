package skill

import "strings"

type Importance string

const (
	ImportanceRequired   Importance = "required"
	ImportancePreferred  Importance = "preferred"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Rank orders importances so that a larger value is more critical.
func (i Importance) Rank() int {
	switch i {
	case ImportanceRequired:
		return 3
	case ImportancePreferred:
		return 2
	case ImportanceNiceToHave:
		return 1
	default:
		return 0
	}
}

type Source string

const (
	SourceRequirements Source = "requirements"
	SourceDescription  Source = "description"
	SourceTitle        Source = "title"
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

// Score maps a proficiency level to 1..4, or 0 when the level is unknown.
// Matching is case-insensitive.
func (l Level) Score() int {
	switch strings.ToLower(strings.TrimSpace(string(l))) {
	case "beginner":
		return 1
	case "intermediate":
		return 2
	case "advanced":
		return 3
	case "expert":
		return 4
	default:
		return 0
	}
}

// Record is a skill extracted from a job posting.
type Record struct {
	Name       string     `json:"name"`
	Importance Importance `json:"importance"`
	Source     Source     `json:"source"`
	Category   string     `json:"category,omitempty"`
}

type UserSkill struct {
	Name     string `json:"name" validate:"required"`
	Level    Level  `json:"level"`
	Category string `json:"category,omitempty"`
}

func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
