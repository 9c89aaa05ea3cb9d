package wheel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

var (
	ErrMalformedID   = errors.New("malformed wedge identifier")
	ErrUnknownParent = errors.New("unknown parent category")
)

// Level is the ring a wedge belongs to, innermost first.
type Level int

const (
	Core Level = iota
	Secondary
	Tertiary
)

var levelNames = [...]string{"core", "secondary", "tertiary"}

func (l Level) String() string {
	if l < Core || l > Tertiary {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel is the inverse of Level.String.
func ParseLevel(s string) (Level, error) {
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: level %q", ErrMalformedID, s)
}

// ID is the serialized identifier of a wedge, stable across regenerations.
type ID string

// Key is the parsed form of an ID. Family is empty for core wedges and
// Parent is only set for tertiary wedges.
type Key struct {
	Level   Level
	Family  string
	Parent  string
	Emotion string
}

const idSep = ":"

var (
	escaper   = strings.NewReplacer("%", "%25", ":", "%3A")
	unescaper = strings.NewReplacer("%3A", ":", "%25", "%")
)

// ID serializes the key: core:E, secondary:F:E, tertiary:F:P:E.
func (k Key) ID() ID {
	parts := []string{k.Level.String()}
	switch k.Level {
	case Secondary:
		parts = append(parts, escaper.Replace(k.Family))
	case Tertiary:
		parts = append(parts, escaper.Replace(k.Family), escaper.Replace(k.Parent))
	}
	parts = append(parts, escaper.Replace(k.Emotion))
	return ID(strings.Join(parts, idSep))
}

// MakeID builds the identifier of a wedge from its level, name and direct
// parent. For tertiary wedges the family is looked up through the taxonomy.
func MakeID(tax *taxonomy.Taxonomy, level Level, emotion, parent string) (ID, error) {
	k := Key{Level: level, Emotion: emotion}
	switch level {
	case Core:
	case Secondary:
		if _, ok := tax.Core(parent); !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownParent, parent)
		}
		k.Family = parent
	case Tertiary:
		family, ok := tax.FamilyOf(parent)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownParent, parent)
		}
		k.Family, k.Parent = family, parent
	default:
		return "", fmt.Errorf("%w: level %d", ErrMalformedID, int(level))
	}
	return k.ID(), nil
}

// ParseID inverts Key.ID.
func ParseID(id ID) (Key, error) {
	parts := strings.Split(string(id), idSep)
	level, err := ParseLevel(parts[0])
	if err != nil {
		return Key{}, err
	}
	want := int(level) + 2
	if len(parts) != want {
		return Key{}, fmt.Errorf("%w: %q has %d fields, want %d", ErrMalformedID, id, len(parts), want)
	}
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			return Key{}, fmt.Errorf("%w: %q has an empty field", ErrMalformedID, id)
		}
		parts[i] = unescaper.Replace(parts[i])
	}
	k := Key{Level: level, Emotion: parts[len(parts)-1]}
	switch level {
	case Secondary:
		k.Family = parts[1]
	case Tertiary:
		k.Family, k.Parent = parts[1], parts[2]
	}
	return k, nil
}

// DirectParent is the wedge one ring further in, empty for core wedges.
func (k Key) DirectParent() string {
	switch k.Level {
	case Secondary:
		return k.Family
	case Tertiary:
		return k.Parent
	}
	return ""
}

// CoreFamily is the core the wedge belongs to, itself for core wedges.
func (k Key) CoreFamily() string {
	if k.Level == Core {
		return k.Emotion
	}
	return k.Family
}
