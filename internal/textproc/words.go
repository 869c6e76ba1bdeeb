// Package textproc holds the pure text heuristics used by skill extraction and
// relevance scoring: whole-word term search, keyword tokenizing, phrase
// templates, years-of-experience parsing and HTML flattening.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// wordChars are the characters that continue a word. Everything else is a boundary,
// so "java" never matches inside "javascript" while "c++" and "c#" match literally.
const wordChars = `a-z0-9+#`

// WordPattern compiles a matcher for term as a whole word. The pattern expects
// lowercased input.
func WordPattern(term string) *regexp.Regexp {
	t := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(term)))
	return regexp.MustCompile(`(?:^|[^` + wordChars + `])` + t + `(?:[^` + wordChars + `]|$)`)
}

// IndexWord returns the byte offset of the first whole-word occurrence of term
// in text, or -1.
func IndexWord(text, term string) int {
	if strings.TrimSpace(term) == "" {
		return -1
	}
	return indexPattern(WordPattern(term), strings.ToLower(text))
}

func ContainsWord(text, term string) bool {
	return IndexWord(text, term) >= 0
}

// IndexPattern runs a WordPattern against already lowercased text.
func IndexPattern(re *regexp.Regexp, lowered string) int {
	return indexPattern(re, lowered)
}

func indexPattern(re *regexp.Regexp, lowered string) int {
	loc := re.FindStringIndex(lowered)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// stopWords filters common English words that add noise to keyword overlap.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
	"years": true, "year": true, "experience": true, "including": true,
	"etc": true, "must": true, "should": true, "strong": true, "plus": true,
}

// Keywords tokenizes text into lowercase keywords of at least 3 characters,
// skipping stop words. "+", "#" and inner dots are kept so "c++" and "node.js"
// survive as one token.
func Keywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !stopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// CountKeywords returns how many of kw occur as tokens of text.
func CountKeywords(kw map[string]bool, text string) int {
	n := 0
	for w := range Keywords(text) {
		if kw[w] {
			n++
		}
	}
	return n
}

// Normalize lowercases s, drops punctuation other than commas and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	b := strings.Builder{}
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == ',':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '/':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
