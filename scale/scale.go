// Package scale holds the static scale catalog and pitch-class set math.
// Definitions are fixed at build time; the catalog is never mutated after
// init.
package scale

import (
	"fmt"

	"github.com/fretmap/fretmap/pitch"
)

// Scale is a named interval-step formula. Steps always sum to 12 (one
// octave), which init asserts for every catalog entry.
type Scale struct {
	Name      string
	Steps     []int
	ModeNames []string // empty for scales without named modes
}

var catalog = []Scale{
	{
		Name:  "major",
		Steps: []int{2, 2, 1, 2, 2, 2, 1},
		ModeNames: []string{
			"Ionian", "Dorian", "Phrygian", "Lydian",
			"Mixolydian", "Aeolian", "Locrian",
		},
	},
	{Name: "natural minor", Steps: []int{2, 1, 2, 2, 1, 2, 2}},
	{Name: "harmonic minor", Steps: []int{2, 1, 2, 2, 1, 3, 1}},
	{Name: "melodic minor", Steps: []int{2, 1, 2, 2, 2, 2, 1}},
	{Name: "major pentatonic", Steps: []int{2, 2, 3, 2, 3}},
	{Name: "minor pentatonic", Steps: []int{3, 2, 2, 3, 2}},
	{Name: "blues", Steps: []int{3, 2, 1, 1, 3, 2}},
	{Name: "whole tone", Steps: []int{2, 2, 2, 2, 2, 2}},
	{Name: "diminished", Steps: []int{1, 2, 1, 2, 1, 2, 1, 2}},
	{Name: "chromatic", Steps: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
}

var byName = make(map[string]Scale)

func init() {
	for _, s := range catalog {
		var sum int
		for _, step := range s.Steps {
			sum += step
		}
		if sum != 12 {
			panic(fmt.Sprintf("scale %q steps sum to %v, want 12", s.Name, sum))
		}
		byName[s.Name] = s
	}
}

// Get looks up a scale definition by name.
func Get(name string) (Scale, bool) {
	s, ok := byName[name]
	return s, ok
}

// Names returns the catalog names in definition order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}
	return names
}

// PitchClassSet applies cumulative step sums from the root, mod 12. The
// result is ordered by scale degree and has exactly len(Steps) entries.
func (s Scale) PitchClassSet(root int) []int {
	set := make([]int, len(s.Steps))
	pc := ((root % 12) + 12) % 12
	for i, step := range s.Steps {
		set[i] = pc
		pc = (pc + step) % 12
	}
	return set
}

// Contains reports whether pc belongs to the scale rooted at root.
func (s Scale) Contains(root, pc int) bool {
	return s.DegreeOf(root, pc) != 0
}

// DegreeOf returns the 1-based scale degree of pc in the scale rooted at
// root, or 0 when the pitch class is not in the scale. Not-in-scale is a
// valid query result, not an error.
func (s Scale) DegreeOf(root, pc int) int {
	pc = ((pc % 12) + 12) % 12
	for i, member := range s.PitchClassSet(root) {
		if member == pc {
			return i + 1
		}
	}
	return 0
}

// ModeRoot returns the pitch class of mode modeIndex of the scale rooted at
// root. The index is taken mod the scale length.
func (s Scale) ModeRoot(root, modeIndex int) int {
	n := len(s.Steps)
	modeIndex = ((modeIndex % n) + n) % n
	return s.PitchClassSet(root)[modeIndex]
}

// Mode returns the rotation of the step pattern starting at modeIndex. The
// returned scale is named after the mode when the parent defines mode names,
// otherwise "Mode N".
func (s Scale) Mode(modeIndex int) Scale {
	n := len(s.Steps)
	modeIndex = ((modeIndex % n) + n) % n
	steps := make([]int, n)
	for i := range steps {
		steps[i] = s.Steps[(modeIndex+i)%n]
	}
	name := fmt.Sprintf("Mode %v", modeIndex+1)
	if modeIndex < len(s.ModeNames) {
		name = s.ModeNames[modeIndex]
	}
	return Scale{Name: name, Steps: steps}
}

// AvailableModes returns the ordered mode display names for the named
// scale, or an empty list when the scale defines none.
func AvailableModes(name string) []string {
	s, ok := Get(name)
	if !ok {
		return nil
	}
	return append([]string(nil), s.ModeNames...)
}

// SpellingFor picks the accidental preference for a key: flat keys (F, Bb,
// Eb, Ab, Db, Gb) spell with flats, everything else with sharps.
func SpellingFor(root int) pitch.Accidental {
	switch ((root % 12) + 12) % 12 {
	case 1, 3, 5, 8, 10:
		return pitch.Flat
	}
	return pitch.Sharp
}
