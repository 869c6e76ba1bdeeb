package matching

import "jobfit/internal/textproc"

type Seniority string

const (
	SeniorityEntry     Seniority = "entry"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityExecutive Seniority = "executive"
)

func (s Seniority) rank() int {
	switch s {
	case SeniorityEntry:
		return 1
	case SeniorityMid:
		return 2
	case SenioritySenior:
		return 3
	case SeniorityLead:
		return 4
	case SeniorityExecutive:
		return 5
	default:
		return 0
	}
}

// Checked from the top of the scale down, so "Senior Engineering Manager" is lead.
var seniorityKeywords = []struct {
	level Seniority
	words []string
}{
	{SeniorityExecutive, []string{"executive", "chief", "cto", "ceo", "cio", "vp", "vice president", "director", "head of"}},
	{SeniorityLead, []string{"lead", "principal", "staff", "manager", "architect"}},
	{SenioritySenior, []string{"senior", "sr"}},
	{SeniorityEntry, []string{"junior", "jr", "entry", "intern", "internship", "graduate", "trainee", "associate"}},
	{SeniorityMid, []string{"mid", "intermediate"}},
}

// seniorityFromText returns the level named by title, or "" when none is.
func seniorityFromText(title string) Seniority {
	for _, k := range seniorityKeywords {
		for _, w := range k.words {
			if textproc.ContainsWord(title, w) {
				return k.level
			}
		}
	}
	return ""
}

func seniorityFromYears(years float64) Seniority {
	switch {
	case years < 2:
		return SeniorityEntry
	case years < 5:
		return SeniorityMid
	case years < 8:
		return SenioritySenior
	default:
		return SeniorityLead
	}
}

// jobSeniority falls back to the years requirement; an unstated requirement reads as mid.
func jobSeniority(title string, requiredYears int) Seniority {
	if s := seniorityFromText(title); s != "" {
		return s
	}
	if requiredYears == 0 {
		return SeniorityMid
	}
	return seniorityFromYears(float64(requiredYears))
}
