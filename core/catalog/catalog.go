// Package catalog holds the list of standards stdmirror mirrors.
//
// The built-in catalog follows the section layout of the standards site.
// A YAML file with the same shape can replace it for partial mirrors.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultURLTemplate addresses one standard page; %d is the identifier.
const DefaultURLTemplate = "https://v8std.ru/std/%d/"

// Section groups standards the way the site's browse tree does.
type Section struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Standards []int  `json:"standards" yaml:"standards"`
}

// Catalog is an ordered list of sections.
type Catalog struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	c := &Catalog{Sections: make([]Section, len(builtin))}
	for i, s := range builtin {
		c.Sections[i] = Section{
			ID:        s.ID,
			Title:     s.Title,
			Standards: append([]int(nil), s.Standards...),
		}
	}
	return c
}

// Load reads a YAML catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog names at least one standard and that
// every identifier is positive.
func (c *Catalog) Validate() error {
	total := 0
	for _, s := range c.Sections {
		for _, id := range s.Standards {
			if id <= 0 {
				return fmt.Errorf("section %d (%s): invalid standard id %d", s.ID, s.Title, id)
			}
			total++
		}
	}
	if total == 0 {
		return fmt.Errorf("catalog lists no standards")
	}
	return nil
}

// IDs returns every standard in the catalog, sorted and de-duplicated.
func (c *Catalog) IDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, s := range c.Sections {
		for _, id := range s.Standards {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// SectionOf returns the first section listing id.
func (c *Catalog) SectionOf(id int) (Section, bool) {
	for _, s := range c.Sections {
		for _, sid := range s.Standards {
			if sid == id {
				return s, true
			}
		}
	}
	return Section{}, false
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseIDs parses explicit identifiers from the command line, keeping their
// order. Anything that is not a positive integer is rejected.
func ParseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid standard id %q: must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// StandardURL expands a URL template for id.
func StandardURL(template string, id int) string {
	if template == "" {
		template = DefaultURLTemplate
	}
	return fmt.Sprintf(template, id)
}
