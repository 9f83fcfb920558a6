// Package chord holds the static chord catalog, the voicing builder and
// reverse chord identification. Like the scale catalog, definitions are
// fixed at build time and never mutated.
package chord

import (
	"fmt"

	"github.com/fretmap/fretmap/constants"
	"github.com/fretmap/fretmap/pitch"
)

// Chord is a named interval formula from a root. Symbol is the suffix used
// in chord names ("m7" in "Am7").
type Chord struct {
	Type      string
	Symbol    string
	Intervals []int // ascending semitone offsets from root, 0 first
}

// Inversion selects which chord tone sounds lowest. Values cycle through
// the chord tones, so Third on a triad is the same as RootPosition.
type Inversion int

const (
	RootPosition Inversion = iota
	First
	Second
	Third
)

var catalog = []Chord{
	{Type: "major", Symbol: "", Intervals: []int{0, 4, 7}},
	{Type: "minor", Symbol: "m", Intervals: []int{0, 3, 7}},
	{Type: "diminished", Symbol: "dim", Intervals: []int{0, 3, 6}},
	{Type: "augmented", Symbol: "aug", Intervals: []int{0, 4, 8}},
	{Type: "sus2", Symbol: "sus2", Intervals: []int{0, 2, 7}},
	{Type: "sus4", Symbol: "sus4", Intervals: []int{0, 5, 7}},
	{Type: "power", Symbol: "5", Intervals: []int{0, 7}},
	{Type: "major 6", Symbol: "6", Intervals: []int{0, 4, 7, 9}},
	{Type: "minor 6", Symbol: "m6", Intervals: []int{0, 3, 7, 9}},
	{Type: "dominant 7", Symbol: "7", Intervals: []int{0, 4, 7, 10}},
	{Type: "major 7", Symbol: "maj7", Intervals: []int{0, 4, 7, 11}},
	{Type: "minor 7", Symbol: "m7", Intervals: []int{0, 3, 7, 10}},
	{Type: "minor 7 flat 5", Symbol: "m7b5", Intervals: []int{0, 3, 6, 10}},
	{Type: "diminished 7", Symbol: "dim7", Intervals: []int{0, 3, 6, 9}},
	{Type: "add 9", Symbol: "add9", Intervals: []int{0, 4, 7, 14}},
	{Type: "dominant 9", Symbol: "9", Intervals: []int{0, 4, 7, 10, 14}},
	{Type: "major 9", Symbol: "maj9", Intervals: []int{0, 4, 7, 11, 14}},
	{Type: "minor 9", Symbol: "m9", Intervals: []int{0, 3, 7, 10, 14}},
}

var byType = make(map[string]Chord)

func init() {
	for _, c := range catalog {
		byType[c.Type] = c
	}
}

// Get looks up a chord definition by type name.
func Get(typ string) (Chord, bool) {
	c, ok := byType[typ]
	return c, ok
}

// Types returns the catalog type names in definition order.
func Types() []string {
	types := make([]string, 0, len(catalog))
	for _, c := range catalog {
		types = append(types, c.Type)
	}
	return types
}

// PitchClassSet returns the distinct pitch classes of the chord built on
// root, in chord-tone order. Repeated intervals collapse.
func (c Chord) PitchClassSet(root int) []int {
	root = ((root % 12) + 12) % 12
	seen := make(map[int]bool)
	var set []int
	for _, iv := range c.Intervals {
		pc := (((root + iv) % 12) + 12) % 12
		if !seen[pc] {
			seen[pc] = true
			set = append(set, pc)
		}
	}
	return set
}

// Voicing builds the compact ascending voicing of the chord at root for the
// requested inversion:
//
//  1. take the chord-tone pitch classes in order from the root
//  2. rotate left so the inversion's tone comes first
//  3. place the first tone at or above root's MIDI value, then place each
//     following tone at the smallest MIDI value strictly above the previous
//     one with the matching pitch class
//
// The result is strictly ascending. An empty interval set yields an empty
// voicing, not an error.
func (c Chord) Voicing(root pitch.Note, inv Inversion) ([]int, error) {
	tones := c.PitchClassSet(root.Class)
	if len(tones) == 0 {
		return nil, nil
	}
	k := ((int(inv) % len(tones)) + len(tones)) % len(tones)

	voicing := make([]int, len(tones))
	prev := root.MIDI() - 1
	for i := range tones {
		pc := tones[(k+i)%len(tones)]
		m := prev + 1
		for m%12 != pc {
			m++
		}
		if m > constants.MaxMIDI {
			return nil, &pitch.RangeError{What: "voicing midi", Value: m, Min: constants.MinMIDI, Max: constants.MaxMIDI}
		}
		voicing[i] = m
		prev = m
	}
	return voicing, nil
}

// DisplayName formats the chord symbol, with slash notation for inversions:
// C major in first inversion is "C/E". Root position has no slash.
func (c Chord) DisplayName(root int, inv Inversion, pref pitch.Accidental) string {
	root = ((root % 12) + 12) % 12
	name := pitch.ClassName(root, pref) + c.Symbol
	tones := c.PitchClassSet(root)
	if len(tones) == 0 {
		return name
	}
	k := ((int(inv) % len(tones)) + len(tones)) % len(tones)
	if k == 0 {
		return name
	}
	return fmt.Sprintf("%v/%v", name, pitch.ClassName(tones[k], pref))
}
