package taxonomy

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// document is the TOML layout of a taxonomy file:
//
//	[[core]]
//	name = "Angry"
//	color = "#D73527"
//
//	[secondary]
//	Angry = ["Let Down", "Mad"]
//
//	[tertiary]
//	"Let Down" = ["Betrayed", "Resentful"]
//	Mad = ["Furious", "Jealous"]
//
//	[colors]
//	"tertiary:Angry:Mad:Furious" = "#FF0000"
//
//	[definitions]
//	Mad = "Angry in a way that is hard to hold back."
type document struct {
	Core []struct {
		Name  string `toml:"name"`
		Color string `toml:"color"`
	} `toml:"core"`
	Secondary   map[string][]string `toml:"secondary"`
	Tertiary    map[string][]string `toml:"tertiary"`
	Colors      map[string]string   `toml:"colors"`
	Definitions map[string]string   `toml:"definitions"`
}

// Load reads a taxonomy file. An empty path returns Default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

func Parse(data []byte) (*Taxonomy, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	cores := make([]Core, 0, len(doc.Core))
	for _, c := range doc.Core {
		col, err := colorful.Hex(c.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: core %q color %q", ErrInvalid, c.Name, c.Color)
		}
		cores = append(cores, Core{Name: c.Name, Color: col})
	}
	t, err := New(cores, doc.Secondary, doc.Tertiary)
	if err != nil {
		return nil, err
	}
	for id, hex := range doc.Colors {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: override %q color %q", ErrInvalid, id, hex)
		}
		t.Overrides[id] = col
	}
	for name, d := range doc.Definitions {
		t.Definitions[name] = d
	}
	return t, nil
}
