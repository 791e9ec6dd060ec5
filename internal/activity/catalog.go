package activity

import (
	_ "embed"
	"fmt"

	"github.com/tatianab/ece-life/internal/vars"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is one row of a catalog table. Year and Semester are zero when the
// table does not gate on them.
type Entry struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Year        int          `yaml:"year"`
	Semester    int          `yaml:"semester"`
	Effects     vars.Effects `yaml:"effects"`
}

// Catalog holds the static tables the long-form activities are built from.
type Catalog struct {
	Core        []Entry `yaml:"core"`
	Electives   []Entry `yaml:"electives"`
	Research    []Entry `yaml:"research"`
	Internships []Entry `yaml:"internships"`
	Study       []Entry `yaml:"study"`
	Social      []Entry `yaml:"social"`
}

// ParseCatalog decodes catalog tables. Effect keys are checked against the
// tracked variables while decoding.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// DefaultCatalog returns the built-in ECE course and activity tables.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func (c Catalog) validate() error {
	tables := []struct {
		name     string
		entries  []Entry
		year     bool
		semester bool
	}{
		{"core", c.Core, true, true},
		{"electives", c.Electives, true, false},
		{"research", c.Research, true, false},
		{"internships", c.Internships, true, false},
		{"study", c.Study, false, false},
		{"social", c.Social, false, false},
	}
	for _, t := range tables {
		for i, e := range t.entries {
			if e.Name == "" {
				return fmt.Errorf("catalog %s[%d]: missing name", t.name, i)
			}
			if t.year && e.Year < 1 {
				return fmt.Errorf("catalog %s %q: year must be at least 1", t.name, e.Name)
			}
			if t.semester && e.Semester < 1 {
				return fmt.Errorf("catalog %s %q: semester must be at least 1", t.name, e.Name)
			}
			if err := e.Effects.Validate(); err != nil {
				return fmt.Errorf("catalog %s %q: %w", t.name, e.Name, err)
			}
		}
	}
	return nil
}
