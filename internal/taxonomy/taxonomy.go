// Package taxonomy holds the static three-level category data the wheel is built from.
package taxonomy

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is returned when taxonomy data breaks a structural rule.
var ErrInvalid = errors.New("invalid taxonomy")

// DyadSize is the number of tertiary entries under every secondary entry.
const DyadSize = 2

// Core is a top level category with its display color.
type Core struct {
	Name  string
	Color colorful.Color
}

// Taxonomy is read-only once built: cores in clockwise order, secondary
// lists per core and tertiary dyads per secondary.
type Taxonomy struct {
	Cores     []Core
	Secondary map[string][]string
	Tertiary  map[string][]string

	// Overrides maps a serialized wedge identifier to an exact color.
	Overrides map[string]colorful.Color

	// Definitions holds a short description per category name.
	Definitions map[string]string

	family map[string]string
}

// New validates the data and indexes secondary entries by family.
func New(cores []Core, secondary, tertiary map[string][]string) (*Taxonomy, error) {
	t := &Taxonomy{
		Cores:       cores,
		Secondary:   secondary,
		Tertiary:    tertiary,
		Overrides:   map[string]colorful.Color{},
		Definitions: map[string]string{},
		family:      map[string]string{},
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Taxonomy) index() error {
	if len(t.Cores) == 0 {
		return fmt.Errorf("%w: no core categories", ErrInvalid)
	}
	seenCore := map[string]bool{}
	for _, c := range t.Cores {
		if c.Name == "" {
			return fmt.Errorf("%w: core with empty name", ErrInvalid)
		}
		if seenCore[c.Name] {
			return fmt.Errorf("%w: duplicate core %q", ErrInvalid, c.Name)
		}
		seenCore[c.Name] = true

		secs := t.Secondary[c.Name]
		if len(secs) == 0 {
			return fmt.Errorf("%w: core %q has no secondary entries", ErrInvalid, c.Name)
		}
		for _, s := range secs {
			if s == "" {
				return fmt.Errorf("%w: core %q has a secondary entry with empty name", ErrInvalid, c.Name)
			}
			if owner, dup := t.family[s]; dup {
				return fmt.Errorf("%w: secondary %q listed under %q and %q", ErrInvalid, s, owner, c.Name)
			}
			t.family[s] = c.Name
			dyad := t.Tertiary[s]
			if n := len(dyad); n != DyadSize {
				return fmt.Errorf("%w: secondary %q has %d tertiary entries, want %d", ErrInvalid, s, n, DyadSize)
			}
			for i, name := range dyad {
				if name == "" {
					return fmt.Errorf("%w: secondary %q has a tertiary entry with empty name", ErrInvalid, s)
				}
				// identifiers are built from the name, so siblings must differ
				for _, prev := range dyad[:i] {
					if prev == name {
						return fmt.Errorf("%w: secondary %q lists tertiary %q twice", ErrInvalid, s, name)
					}
				}
			}
		}
	}
	for parent := range t.Tertiary {
		if _, ok := t.family[parent]; !ok {
			return fmt.Errorf("%w: tertiary parent %q is not a secondary entry", ErrInvalid, parent)
		}
	}
	return nil
}

// FamilyOf returns the core that owns a secondary entry.
func (t *Taxonomy) FamilyOf(secondary string) (string, bool) {
	f, ok := t.family[secondary]
	return f, ok
}

// Core looks up a core category by name.
func (t *Taxonomy) Core(name string) (Core, bool) {
	for _, c := range t.Cores {
		if c.Name == name {
			return c, true
		}
	}
	return Core{}, false
}

// TotalSecondary counts secondary entries across every core.
func (t *Taxonomy) TotalSecondary() int {
	n := 0
	for _, c := range t.Cores {
		n += len(t.Secondary[c.Name])
	}
	return n
}

// Definition describes a category, with a generic sentence for names that
// have no entry. Simplified wording is used for the simplified wheel.
func (t *Taxonomy) Definition(name string, simplified bool) string {
	if d, ok := t.Definitions[name]; ok && d != "" {
		return d
	}
	if simplified {
		return fmt.Sprintf("%s is a feeling that people experience.", name)
	}
	return fmt.Sprintf("%s is an emotion that represents a specific aspect of human emotional experience.", name)
}
