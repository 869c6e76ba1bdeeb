package matching

import (
	"regexp"
	"strings"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/match"
	"jobfit/internal/domain/user"
	"jobfit/internal/textproc"
)

const (
	educationBase       = 50
	degreePoints        = 30
	fieldPoints         = 30
	degreeUnmetPenalty  = 20
	emptyEducationScore = 40
)

type degreeLevel int

const (
	degreeNone degreeLevel = iota
	degreeAssociate
	degreeBachelor
	degreeMaster
	degreePhD
)

var degreeNames = map[degreeLevel]string{
	degreeAssociate: "associate",
	degreeBachelor:  "bachelor",
	degreeMaster:    "master",
	degreePhD:       "phd",
}

type degreeTerms struct {
	level degreeLevel
	terms []string
}

// Terms safe to look for in a job posting.
var jobDegreeTerms = []degreeTerms{
	{degreePhD, []string{"phd", "ph.d", "ph.d.", "doctorate", "doctoral"}},
	{degreeMaster, []string{"master", "master's", "masters", "msc", "m.sc", "m.s.", "mba"}},
	{degreeBachelor, []string{"bachelor", "bachelor's", "bachelors", "bsc", "b.sc", "b.s.", "b.a.", "undergraduate degree"}},
	{degreeAssociate, []string{"associate degree", "associate's degree", "associates degree"}},
}

// Short forms only trusted in a profile's degree field.
var profileDegreeTerms = []degreeTerms{
	{degreePhD, []string{"dphil"}},
	{degreeMaster, []string{"ms", "ma", "meng", "m.eng"}},
	{degreeBachelor, []string{"bs", "ba", "beng", "b.eng", "s1"}},
	{degreeAssociate, []string{"associate", "associates", "aas", "d3"}},
}

var scrumMaster = regexp.MustCompile(`(?i)scrum\s+master`)

func degreeMentions(text string, tables ...[]degreeTerms) []degreeLevel {
	out := make([]degreeLevel, 0, 2)
	for _, table := range tables {
		for _, dt := range table {
			for _, t := range dt.terms {
				if textproc.ContainsWord(text, t) {
					out = append(out, dt.level)
					break
				}
			}
		}
	}
	return out
}

// requiredDegree is the lowest degree the posting mentions, since postings
// usually list the minimum first and better degrees as alternatives.
func requiredDegree(text string) degreeLevel {
	text = scrumMaster.ReplaceAllString(text, " ")
	req := degreeNone
	for _, lvl := range degreeMentions(text, jobDegreeTerms) {
		if req == degreeNone || lvl < req {
			req = lvl
		}
	}
	return req
}

func profileDegree(degree string) degreeLevel {
	best := degreeNone
	for _, lvl := range degreeMentions(degree, jobDegreeTerms, profileDegreeTerms) {
		if lvl > best {
			best = lvl
		}
	}
	return best
}

func gpaBonus(gpa float64) int {
	switch {
	case gpa >= 3.7:
		return 20
	case gpa >= 3.5:
		return 15
	case gpa >= 3.0:
		return 10
	default:
		return 0
	}
}

// ScoreEducation scores degrees, fields of study and GPA. An empty education
// list scores a fixed 40.
func (s *Scorers) ScoreEducation(p job.Posting, prof user.Profile) match.EducationScore {
	text := p.Text()
	req := requiredDegree(text)
	d := match.EducationDetails{
		RequiredDegree: degreeNames[req],
		RequiredFields: s.requiredFields(text),
	}

	if len(prof.Education) == 0 {
		return match.EducationScore{
			CategoryScore: match.CategoryScore{Score: emptyEducationScore},
			Details:       d,
		}
	}

	highest := degreeNone
	var bestGPA *float64
	for _, e := range prof.Education {
		if lvl := profileDegree(e.Degree); lvl > highest {
			highest = lvl
		}
		if e.GPA != nil && !e.GPAPrivate && (bestGPA == nil || *e.GPA > *bestGPA) {
			g := *e.GPA
			bestGPA = &g
		}
	}
	d.HighestDegree = degreeNames[highest]
	d.DegreeMet = req == degreeNone || highest >= req
	d.FieldMet = fieldMatches(d.RequiredFields, prof.Education)
	if bestGPA != nil {
		d.GPA = bestGPA
		d.GPABonus = gpaBonus(*bestGPA)
	}

	raw := educationBase + d.GPABonus
	if d.DegreeMet {
		raw += degreePoints
	} else {
		raw -= degreeUnmetPenalty
	}
	if d.FieldMet {
		raw += fieldPoints
	}

	return match.EducationScore{
		CategoryScore: match.CategoryScore{Score: clampScore(raw)},
		Details:       d,
	}
}

func (s *Scorers) requiredFields(text string) []string {
	out := make([]string, 0)
	for _, f := range s.cat.FieldsOfStudy() {
		if textproc.ContainsWord(text, f) {
			out = append(out, f)
		}
	}
	return out
}

// fieldMatches is satisfied when no field is required or any studied field
// overlaps a required one as a substring either way.
func fieldMatches(required []string, history []user.Education) bool {
	if len(required) == 0 {
		return true
	}
	for _, e := range history {
		studied := textproc.Normalize(e.Field + " " + e.Degree)
		field := textproc.Normalize(e.Field)
		for _, r := range required {
			r = textproc.Normalize(r)
			if strings.Contains(studied, r) || (field != "" && strings.Contains(r, field)) {
				return true
			}
		}
	}
	return false
}
