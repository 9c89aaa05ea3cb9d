package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShape(t *testing.T) {
	tax := Default()
	require.Len(t, tax.Cores, 7)
	assert.Equal(t, "Angry", tax.Cores[0].Name)
	assert.Equal(t, 41, tax.TotalSecondary())
	assert.Len(t, tax.Secondary["Angry"], 8)
	assert.Len(t, tax.Secondary["Disgusted"], 4)
	for _, secs := range tax.Secondary {
		for _, s := range secs {
			assert.Len(t, tax.Tertiary[s], DyadSize, s)
		}
	}
	assert.Equal(t, "#d73527", tax.Cores[0].Color.Hex())
}

func TestFamilyOf(t *testing.T) {
	tax := Default()
	f, ok := tax.FamilyOf("Mad")
	require.True(t, ok)
	assert.Equal(t, "Angry", f)

	f, ok = tax.FamilyOf("Hurt")
	require.True(t, ok)
	assert.Equal(t, "Sad", f)

	_, ok = tax.FamilyOf("Furious")
	assert.False(t, ok)
}

func TestNewRejectsBrokenData(t *testing.T) {
	good := func() ([]Core, map[string][]string, map[string][]string) {
		return []Core{{Name: "A"}, {Name: "B"}},
			map[string][]string{"A": {"a1"}, "B": {"b1"}},
			map[string][]string{"a1": {"x", "y"}, "b1": {"z", "w"}}
	}

	cores, sec, ter := good()
	_, err := New(cores, sec, ter)
	require.NoError(t, err)

	cases := map[string]func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string){
		"no cores": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			return nil, s, te
		},
		"duplicate core": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			return append(c, Core{Name: "A"}), s, te
		},
		"empty secondary": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			s["B"] = nil
			return c, s, te
		},
		"shared secondary": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			s["B"] = []string{"a1"}
			return c, s, te
		},
		"not a dyad": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			te["a1"] = []string{"x", "y", "q"}
			return c, s, te
		},
		"repeated tertiary": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			te["a1"] = []string{"x", "x"}
			return c, s, te
		},
		"empty tertiary": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			te["b1"] = []string{"z", ""}
			return c, s, te
		},
		"empty secondary name": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			s["B"] = []string{""}
			te[""] = []string{"z", "w"}
			return c, s, te
		},
		"orphan tertiary": func(c []Core, s, te map[string][]string) ([]Core, map[string][]string, map[string][]string) {
			te["ghost"] = []string{"x", "y"}
			return c, s, te
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(mutate(good()))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

const smallDoc = `
[[core]]
name = "Angry"
color = "#D73527"

[[core]]
name = "Calm"
color = "#336699"

[secondary]
Angry = ["Mad", "Out:Raged"]
Calm = ["Still"]

[tertiary]
Mad = ["Furious", "Jealous"]
"Out:Raged" = ["Hot", "Cold"]
Still = ["Quiet", "Serene"]

[colors]
"tertiary:Angry:Mad:Furious" = "#FF0000"

[definitions]
Still = "Calm without movement."
`

func TestParseRejectsRepeatedTertiary(t *testing.T) {
	_, err := Parse([]byte(`
[[core]]
name = "A"
color = "#aa3355"

[secondary]
A = ["S"]

[tertiary]
S = ["X", "X"]
`))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), `"X" twice`)
}

func TestParse(t *testing.T) {
	tax, err := Parse([]byte(smallDoc))
	require.NoError(t, err)
	require.Len(t, tax.Cores, 2)
	assert.Equal(t, "Calm", tax.Cores[1].Name)
	assert.Equal(t, []string{"Mad", "Out:Raged"}, tax.Secondary["Angry"])
	assert.Equal(t, 3, tax.TotalSecondary())
	require.Contains(t, tax.Overrides, "tertiary:Angry:Mad:Furious")
	assert.Equal(t, "#ff0000", tax.Overrides["tertiary:Angry:Mad:Furious"].Hex())
	assert.Equal(t, "Calm without movement.", tax.Definition("Still", false))
}

func TestDefinition(t *testing.T) {
	tax := Default()
	assert.Equal(t, "Feeling sorrow or unhappiness.", tax.Definition("Sad", false))
	assert.Equal(t, "Feeling sorrow or unhappiness.", tax.Definition("Sad", true))
	assert.Equal(t, "Mad is a feeling that people experience.", tax.Definition("Mad", true))
	assert.Contains(t, tax.Definition("Mad", false), "specific aspect")
}

func TestParseBadColor(t *testing.T) {
	_, err := Parse([]byte(`
[[core]]
name = "A"
color = "red"
[secondary]
A = ["a"]
[tertiary]
a = ["x", "y"]
`))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	tax, err := Load("")
	require.NoError(t, err)
	assert.Len(t, tax.Cores, 7)

	path := filepath.Join(t.TempDir(), "tax.toml")
	require.NoError(t, os.WriteFile(path, []byte(smallDoc), 0o644))
	tax, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, tax.Cores, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
