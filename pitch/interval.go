package pitch

import "fmt"

// Interval is a signed semitone distance. Values beyond 12 are compound
// intervals (ninths, tenths, ...).
type Interval struct {
	Semitones int
}

var simpleNames = [13]string{
	"unison",
	"minor second",
	"major second",
	"minor third",
	"major third",
	"perfect fourth",
	"tritone",
	"perfect fifth",
	"minor sixth",
	"major sixth",
	"minor seventh",
	"major seventh",
	"octave",
}

// 13..21 semitones
var compoundNames = [9]string{
	"minor ninth",
	"major ninth",
	"minor tenth",
	"major tenth",
	"perfect eleventh",
	"augmented eleventh",
	"perfect twelfth",
	"minor thirteenth",
	"major thirteenth",
}

// short degree labels used as highlight color keys, indexed by semitones
// above the root
var shortLabels = [12]string{"R", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// Between returns the interval from a up (or down) to b.
func Between(a, b Note) Interval {
	return Interval{Semitones: b.MIDI() - a.MIDI()}
}

// Name returns the conventional interval name. Descending intervals are
// named by their absolute size.
func (iv Interval) Name() string {
	s := iv.Semitones
	if s < 0 {
		s = -s
	}
	switch {
	case s <= 12:
		return simpleNames[s]
	case s <= 21:
		return compoundNames[s-13]
	}
	return fmt.Sprintf("%v semitones", s)
}

// Invert returns the octave inversion of the simple form of the interval:
// a major third inverts to a minor sixth.
func (iv Interval) Invert() Interval {
	s := ((iv.Semitones % 12) + 12) % 12
	return Interval{Semitones: (12 - s) % 12}
}

// Add stacks two intervals.
func (iv Interval) Add(other Interval) Interval {
	return Interval{Semitones: iv.Semitones + other.Semitones}
}

// Simple reduces a compound interval to within one octave.
func (iv Interval) Simple() Interval {
	return Interval{Semitones: ((iv.Semitones % 12) + 12) % 12}
}

// ShortLabel is the compact degree label ("R", "b3", "5") for a semitone
// offset above a root.
func ShortLabel(semitonesFromRoot int) string {
	return shortLabels[((semitonesFromRoot%12)+12)%12]
}
