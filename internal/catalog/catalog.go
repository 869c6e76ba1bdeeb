// Package catalog holds the lookup tables the matching engine reads: the skill
// dictionary, learning platforms, fields of study and importance weights.
// The default tables are embedded at compile time.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobfit/internal/domain/skill"
)

//go:embed data/catalog.yaml
var files embed.FS

const defaultFile = "data/catalog.yaml"

// SkillPlaceholder is replaced with the query-escaped skill name in platform URLs.
const SkillPlaceholder = "{skill}"

var ErrInvalidCatalog = errors.New("invalid catalog")

type Skill struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Docs     string `yaml:"docs,omitempty"`
}

type Platform struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Data is the on-disk shape of a catalog file.
type Data struct {
	ImportanceWeights map[string]float64 `yaml:"importance_weights"`
	Platforms         []Platform         `yaml:"platforms"`
	FieldsOfStudy     []string           `yaml:"fields_of_study"`
	Skills            []Skill            `yaml:"skills"`
}

// Catalog is immutable once built; accessors return copies.
type Catalog struct {
	skills    []Skill
	byName    map[string]Skill
	platforms []Platform
	fields    []string
	weights   map[skill.Importance]float64
}

func New(d Data) (*Catalog, error) {
	c := &Catalog{
		skills:  make([]Skill, 0, len(d.Skills)),
		byName:  make(map[string]Skill, len(d.Skills)),
		weights: make(map[skill.Importance]float64, 3),
	}

	for i, s := range d.Skills {
		s.Name = strings.TrimSpace(s.Name)
		s.Category = strings.ToLower(strings.TrimSpace(s.Category))
		if s.Name == "" {
			return nil, fmt.Errorf("%w: skill %d has no name", ErrInvalidCatalog, i)
		}
		key := skill.NormalizeName(s.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate skill %q", ErrInvalidCatalog, s.Name)
		}
		c.byName[key] = s
		c.skills = append(c.skills, s)
	}

	for _, imp := range []skill.Importance{skill.ImportanceRequired, skill.ImportancePreferred, skill.ImportanceNiceToHave} {
		w, ok := d.ImportanceWeights[string(imp)]
		if !ok || w <= 0 {
			return nil, fmt.Errorf("%w: missing or non-positive weight for %q", ErrInvalidCatalog, imp)
		}
		c.weights[imp] = w
	}

	for _, p := range d.Platforms {
		if p.Name == "" || !strings.Contains(p.URL, SkillPlaceholder) {
			return nil, fmt.Errorf("%w: platform %q needs a name and a %s url", ErrInvalidCatalog, p.Name, SkillPlaceholder)
		}
		c.platforms = append(c.platforms, p)
	}

	for _, f := range d.FieldsOfStudy {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			c.fields = append(c.fields, f)
		}
	}

	return c, nil
}

func Parse(raw []byte) (*Catalog, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(d)
}

func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadDefault parses the embedded catalog.
func LoadDefault() (*Catalog, error) {
	raw, err := files.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(raw)
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// MustDefault panics if the embedded catalog is broken.
func MustDefault() *Catalog {
	c, err := LoadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

func (c *Catalog) Lookup(name string) (Skill, bool) {
	s, ok := c.byName[skill.NormalizeName(name)]
	return s, ok
}

// Category returns the dictionary category of name, or "" if it is not a known skill.
func (c *Catalog) Category(name string) string {
	return c.byName[skill.NormalizeName(name)].Category
}

func (c *Catalog) Docs(name string) string {
	return c.byName[skill.NormalizeName(name)].Docs
}

func (c *Catalog) Platforms() []Platform {
	out := make([]Platform, len(c.platforms))
	copy(out, c.platforms)
	return out
}

func (c *Catalog) FieldsOfStudy() []string {
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// ImportanceWeight returns the gap-priority weight for imp, 0 when unknown.
func (c *Catalog) ImportanceWeight(imp skill.Importance) float64 {
	return c.weights[imp]
}
