package textproc

import (
	"regexp"
	"strings"
)

// maxPhraseWords caps a captured phrase.
const maxPhraseWords = 4

// Longer templates come first so "must have experience with" wins over "experience with".
var phraseTemplate = regexp.MustCompile(`(?i)\b(?:must have experience with|experience with|experience in|knowledge of|proficiency in|proficient in|familiarity with|familiar with)\s+([^.,;:()\n]+)`)

var phraseStops = map[string]bool{
	"and": true, "or": true, "to": true, "for": true, "as": true,
	"including": true, "is": true, "are": true, "at": true, "plus": true,
	"in": true, "on": true, "with": true, "using": true, "from": true,
}

var phraseArticles = map[string]bool{"the": true, "a": true, "an": true}

// ExtractPhrases returns the candidate skill phrases captured by the phrase
// templates, in textual order and without case-insensitive duplicates.
// It knows nothing about the skill dictionary.
func ExtractPhrases(text string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})

	for _, m := range phraseTemplate.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(m[1])
		for len(words) > 0 && phraseArticles[strings.ToLower(words[0])] {
			words = words[1:]
		}

		kept := make([]string, 0, maxPhraseWords)
		for _, w := range words {
			if phraseStops[strings.ToLower(w)] || len(kept) == maxPhraseWords {
				break
			}
			kept = append(kept, w)
		}
		if len(kept) == 0 {
			continue
		}

		phrase := strings.Join(kept, " ")
		key := strings.ToLower(phrase)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, phrase)
	}
	return out
}
