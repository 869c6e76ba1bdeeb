package matching

import (
	"regexp"
	"sort"
	"strings"

	"jobfit/internal/catalog"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/skill"
	"jobfit/internal/textproc"
)

type dictEntry struct {
	skill   catalog.Skill
	pattern *regexp.Regexp
}

// Extractor finds dictionary skills in job postings.
type Extractor struct {
	cat   *catalog.Catalog
	dict  []dictEntry
	words map[string]*regexp.Regexp
}

var (
	niceToHaveMarkers = []string{"bonus", "optional"}
	preferredMarkers  = []string{"preferred", "nice to have", "nice-to-have", "plus"}
)

func NewExtractor(cat *catalog.Catalog) *Extractor {
	skills := cat.Skills()
	e := &Extractor{
		cat:   cat,
		dict:  make([]dictEntry, 0, len(skills)),
		words: make(map[string]*regexp.Regexp, len(niceToHaveMarkers)+len(preferredMarkers)),
	}
	for _, s := range skills {
		e.dict = append(e.dict, dictEntry{skill: s, pattern: textproc.WordPattern(s.Name)})
	}
	for _, m := range append(append([]string{}, niceToHaveMarkers...), preferredMarkers...) {
		e.words[m] = textproc.WordPattern(m)
	}
	return e
}

type hit struct {
	name     string
	category string
	pos      int
}

// find returns the dictionary skills present in text ordered by first position.
func (e *Extractor) find(text string) []hit {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return nil
	}
	hits := make([]hit, 0)
	for _, d := range e.dict {
		if pos := textproc.IndexPattern(d.pattern, lowered); pos >= 0 {
			hits = append(hits, hit{name: d.skill.Name, category: d.skill.Category, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

// findWithPhrases adds the phrase template captures of text to its dictionary
// hits. A phrase is kept only when it contains a dictionary skill, and takes
// that skill's category.
func (e *Extractor) findWithPhrases(text string) []hit {
	hits := e.find(text)
	lowered := strings.ToLower(text)
	for _, phrase := range textproc.ExtractPhrases(text) {
		inner := e.find(phrase)
		if len(inner) == 0 {
			continue
		}
		pos := strings.Index(lowered, strings.ToLower(phrase))
		if pos < 0 {
			pos = len(lowered)
		}
		hits = append(hits, hit{name: phrase, category: inner[0].category, pos: pos})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

func (e *Extractor) lineImportance(line string) skill.Importance {
	lowered := strings.ToLower(line)
	for _, m := range niceToHaveMarkers {
		if textproc.IndexPattern(e.words[m], lowered) >= 0 {
			return skill.ImportanceNiceToHave
		}
	}
	for _, m := range preferredMarkers {
		if textproc.IndexPattern(e.words[m], lowered) >= 0 {
			return skill.ImportancePreferred
		}
	}
	return skill.ImportanceRequired
}

// Extract returns the deduplicated skills of a posting. Requirement lines are
// scanned first, then the description, then the title; the first occurrence of
// a name wins.
func (e *Extractor) Extract(p job.Posting) []skill.Record {
	out := make([]skill.Record, 0)
	seen := make(map[string]struct{})
	add := func(hits []hit, imp skill.Importance, src skill.Source) {
		for _, h := range hits {
			key := skill.NormalizeName(h.name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, skill.Record{
				Name:       h.name,
				Importance: imp,
				Source:     src,
				Category:   h.category,
			})
		}
	}

	for _, line := range p.Requirements {
		add(e.findWithPhrases(line), e.lineImportance(line), skill.SourceRequirements)
	}
	add(e.findWithPhrases(p.Description), skill.ImportancePreferred, skill.SourceDescription)
	add(e.find(p.Title), skill.ImportanceRequired, skill.SourceTitle)

	return out
}
