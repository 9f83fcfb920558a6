package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fretmap/fretmap/constants"
)

// Accidental is the preferred spelling for a pitch class. It only affects
// display; two notes with the same MIDI value are equal regardless of
// spelling.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// semitone of each natural letter above C
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// RangeError reports a value outside the supported bounds.
type RangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v %v out of range [%v, %v]", e.What, e.Value, e.Min, e.Max)
}

// Note is an immutable pitch: a pitch class in a specific octave, with a
// preferred accidental for display. C4 is middle C (MIDI 60).
type Note struct {
	Class    int // 0..11
	Octave   int // scientific pitch notation, MIDI 0 = C-1
	Spelling Accidental
}

// MIDI returns the MIDI note number, (octave+1)*12 + class.
func (n Note) MIDI() int {
	return (n.Octave+1)*12 + n.Class
}

// Equal compares by MIDI value only; spelling is a display concern.
func (n Note) Equal(other Note) bool {
	return n.MIDI() == other.MIDI()
}

// ClassName returns the pitch-class name under the note's spelling
// preference, e.g. "C#" or "Db".
func (n Note) ClassName() string {
	return ClassName(n.Class, n.Spelling)
}

// String renders the note in scientific pitch notation, e.g. "E2", "C#4".
func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.ClassName(), n.Octave)
}

// FromMIDI builds a Note from a MIDI number, defaulting to sharp spelling.
func FromMIDI(m int) (Note, error) {
	if m < constants.MinMIDI || m > constants.MaxMIDI {
		return Note{}, &RangeError{What: "midi", Value: m, Min: constants.MinMIDI, Max: constants.MaxMIDI}
	}
	return Note{Class: m % 12, Octave: m/12 - 1, Spelling: Sharp}, nil
}

// FromName resolves a letter + accidental + octave to a Note. Out-of-letter
// results wrap into the neighboring octave: B# in octave 3 is C in octave 4,
// Cb in octave 4 is B in octave 3.
func FromName(letter byte, acc Accidental, octave int) (Note, error) {
	base, ok := letterSemitones[letter]
	if !ok {
		return Note{}, fmt.Errorf("invalid note letter %q", string(letter))
	}
	m := (octave+1)*12 + base
	switch acc {
	case Sharp:
		m++
	case Flat:
		m--
	}
	if m < constants.MinMIDI || m > constants.MaxMIDI {
		return Note{}, &RangeError{What: "midi", Value: m, Min: constants.MinMIDI, Max: constants.MaxMIDI}
	}
	return Note{Class: ((m % 12) + 12) % 12, Octave: m/12 - 1, Spelling: acc}, nil
}

// Parse reads scientific pitch notation: "C4", "F#2", "Bb3", "Cb5".
func Parse(s string) (Note, error) {
	if len(s) < 2 {
		return Note{}, fmt.Errorf("note name %q too short", s)
	}
	letter := strings.ToUpper(s[:1])[0]
	acc := Natural
	rest := s[1:]
	switch rest[0] {
	case '#':
		acc = Sharp
		rest = rest[1:]
	case 'b':
		acc = Flat
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in note name %q: %w", s, err)
	}
	return FromName(letter, acc, octave)
}

// Transpose returns a new Note shifted by the given number of semitones.
// The result is spelled with pref; Natural falls back to sharps.
func (n Note) Transpose(semitones int, pref Accidental) (Note, error) {
	m := n.MIDI() + semitones
	if m < constants.MinMIDI || m > constants.MaxMIDI {
		return Note{}, &RangeError{What: "midi", Value: m, Min: constants.MinMIDI, Max: constants.MaxMIDI}
	}
	if pref == Natural {
		pref = Sharp
	}
	return Note{Class: m % 12, Octave: m/12 - 1, Spelling: pref}, nil
}

// ClassName names a bare pitch class under an accidental preference.
func ClassName(class int, pref Accidental) string {
	class = ((class % 12) + 12) % 12
	if pref == Flat {
		return flatNames[class]
	}
	return sharpNames[class]
}

// ParseClass resolves a pitch-class name ("C", "F#", "Bb") to 0..11.
func ParseClass(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty pitch-class name")
	}
	letter := strings.ToUpper(s[:1])[0]
	base, ok := letterSemitones[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note letter %q", s[:1])
	}
	switch {
	case len(s) == 1:
		return base, nil
	case len(s) == 2 && s[1] == '#':
		return (base + 1) % 12, nil
	case len(s) == 2 && s[1] == 'b':
		return (base + 11) % 12, nil
	}
	return 0, fmt.Errorf("invalid pitch-class name %q", s)
}
