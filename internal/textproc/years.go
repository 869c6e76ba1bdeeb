package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

// maxPlausibleYears drops matches such as "over 50 years of combined history".
const maxPlausibleYears = 30

var (
	yearRange    = regexp.MustCompile(`\b(\d{1,2})\s*(?:-|–|to)\s*\d{1,2}\s*(?:years?|yrs?)\b`)
	yearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{1,2})\s*\+\s*(?:years?|yrs?)\b`),
		regexp.MustCompile(`\b(?:minimum|at least|min\.?)\s+(?:of\s+)?(\d{1,2})\s*(?:years?|yrs?)\b`),
		regexp.MustCompile(`\b(\d{1,2})\s*(?:years?|yrs?)\s+(?:of\s+)?(?:[a-z-]+\s+){0,2}experience`),
	}
)

// YearsRequired returns the largest years-of-experience figure mentioned in the
// given texts, or 0 when none is found. A range such as "3-5 years" counts as 3.
func YearsRequired(texts ...string) int {
	best := 0
	consider := func(raw string) {
		n, err := strconv.Atoi(raw)
		if err != nil || n > maxPlausibleYears {
			return
		}
		if n > best {
			best = n
		}
	}

	for _, t := range texts {
		lowered := strings.ToLower(t)
		for _, m := range yearRange.FindAllStringSubmatch(lowered, -1) {
			consider(m[1])
		}
		lowered = yearRange.ReplaceAllString(lowered, "$1 years")
		for _, re := range yearPatterns {
			for _, m := range re.FindAllStringSubmatch(lowered, -1) {
				consider(m[1])
			}
		}
	}
	return best
}
