// Package tuning holds the catalog of open-string tunings that form the
// coordinate basis for fret-to-pitch conversion.
package tuning

import (
	"fmt"
	"strings"

	"github.com/fretmap/fretmap/constants"
	"github.com/fretmap/fretmap/pitch"
)

// Tuning is an ordered list of open-string notes, index 0 being the
// lowest-pitched string. Visual string order is a layout concern, not a
// tuning concern.
type Tuning struct {
	Name string
	Open []pitch.Note
}

var catalog []Tuning

var byName = make(map[string]Tuning)

func init() {
	defs := []struct {
		name  string
		notes string
	}{
		{"standard", "E2 A2 D3 G3 B3 E4"},
		{"drop d", "D2 A2 D3 G3 B3 E4"},
		{"half step down", "Eb2 Ab2 Db3 Gb3 Bb3 Eb4"},
		{"open g", "D2 G2 D3 G3 B3 D4"},
		{"open d", "D2 A2 D3 F#3 A3 D4"},
		{"dadgad", "D2 A2 D3 G3 A3 D4"},
		{"7 string", "B1 E2 A2 D3 G3 B3 E4"},
		{"bass", "E1 A1 D2 G2"},
		{"ukulele", "G4 C4 E4 A4"},
	}
	for _, def := range defs {
		t, err := FromNames(def.name, strings.Fields(def.notes))
		if err != nil {
			panic(fmt.Sprintf("bad tuning %q: %v", def.name, err))
		}
		catalog = append(catalog, t)
		byName[def.name] = t
	}
}

// Get looks up a tuning by name.
func Get(name string) (Tuning, bool) {
	t, ok := byName[name]
	return t, ok
}

// Names returns the catalog names in definition order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, t := range catalog {
		names = append(names, t.Name)
	}
	return names
}

// FromNames builds a tuning from note names like ["E2","A2","D3",...].
func FromNames(name string, notes []string) (Tuning, error) {
	if len(notes) == 0 {
		return Tuning{}, fmt.Errorf("tuning %q has no strings", name)
	}
	open := make([]pitch.Note, len(notes))
	for i, s := range notes {
		n, err := pitch.Parse(s)
		if err != nil {
			return Tuning{}, fmt.Errorf("tuning %q string %v: %w", name, i, err)
		}
		open[i] = n
	}
	return Tuning{Name: name, Open: open}, nil
}

// Strings returns the string count.
func (t Tuning) Strings() int {
	return len(t.Open)
}

// MIDIAt converts a (string, fret) coordinate to its MIDI note number.
func (t Tuning) MIDIAt(str, fret int) (int, error) {
	if str < 0 || str >= len(t.Open) {
		return 0, &pitch.RangeError{What: "string", Value: str, Min: 0, Max: len(t.Open) - 1}
	}
	if fret < 0 {
		return 0, &pitch.RangeError{What: "fret", Value: fret, Min: 0, Max: constants.MaxMIDI}
	}
	m := t.Open[str].MIDI() + fret
	if m > constants.MaxMIDI {
		return 0, &pitch.RangeError{What: "midi", Value: m, Min: constants.MinMIDI, Max: constants.MaxMIDI}
	}
	return m, nil
}

// String renders the open strings low to high, e.g. "E2 A2 D3 G3 B3 E4".
func (t Tuning) String() string {
	names := make([]string, len(t.Open))
	for i, n := range t.Open {
		names[i] = n.String()
	}
	return strings.Join(names, " ")
}
