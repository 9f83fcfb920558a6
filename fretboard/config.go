// Package fretboard computes highlight maps: the projection of a scale or
// chord onto a string-by-fret grid. The mapper is a pure function of an
// immutable Config; equal configs always produce equal maps.
package fretboard

import (
	"fmt"
	"sort"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/constants"
	"github.com/fretmap/fretmap/tuning"
)

// ViewMode selects what the fretboard highlights.
type ViewMode int

const (
	ViewIntervals ViewMode = iota
	ViewScales
	ViewChordInversions
	ViewOpenChords
	ViewBarreChords
	ViewAdvancedChords
)

var viewModeNames = map[ViewMode]string{
	ViewIntervals:       "intervals",
	ViewScales:          "scales",
	ViewChordInversions: "chord-inversions",
	ViewOpenChords:      "open-chords",
	ViewBarreChords:     "barre-chords",
	ViewAdvancedChords:  "advanced-chords",
}

func (v ViewMode) String() string {
	if name, ok := viewModeNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ViewMode(%d)", int(v))
}

// IsChord reports whether the mode highlights chord tones rather than scale
// membership.
func (v ViewMode) IsChord() bool {
	switch v {
	case ViewChordInversions, ViewOpenChords, ViewBarreChords, ViewAdvancedChords:
		return true
	}
	return false
}

// ParseViewMode resolves a mode name as used by the CLI and HTTP surfaces.
func ParseViewMode(s string) (ViewMode, error) {
	for v, name := range viewModeNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// Handedness mirrors the fret axis for left-handed players.
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

// BassSide places the lowest string at the top or bottom of the screen.
type BassSide int

const (
	BassBottom BassSide = iota
	BassTop
)

// Layout is the presentation orientation. It is applied after highlight
// computation and never changes which cells are highlighted.
type Layout struct {
	Handedness Handedness
	Bass       BassSide
}

// Config is the immutable parameter set the mapper consumes. Controls never
// mutate a Config in place; every change goes through a With* copy.
type Config struct {
	Root      int // pitch class 0..11
	View      ViewMode
	ScaleName string
	ModeIndex int
	ChordType string
	Inversion chord.Inversion
	Tuning    tuning.Tuning
	FretCount int

	SelectedOctaves   []int
	SelectedIntervals []int // semitone offsets from the root; empty = all

	ShowAdditionalOctaves bool
	ShowAllPositions      bool
	VisibleFretStart      int
	VisibleFretEnd        int

	Layout Layout
}

// Default returns the out-of-the-box configuration: C major scale view on a
// standard-tuned six string.
func Default() Config {
	std, _ := tuning.Get("standard")
	return Config{
		View:            ViewScales,
		ScaleName:       "major",
		ChordType:       "major",
		Tuning:          std,
		FretCount:       constants.DefaultFretCount,
		SelectedOctaves: []int{constants.DefaultOctave},
	}
}

// StringCount is derived from the tuning, which keeps the two from drifting
// apart.
func (c Config) StringCount() int {
	return c.Tuning.Strings()
}

// EffectiveOctaves returns the selected octaves, sorted and deduplicated.
// An empty selection degrades to the default octave rather than failing.
func (c Config) EffectiveOctaves() []int {
	if len(c.SelectedOctaves) == 0 {
		return []int{constants.DefaultOctave}
	}
	seen := make(map[int]bool)
	var octaves []int
	for _, o := range c.SelectedOctaves {
		if !seen[o] {
			seen[o] = true
			octaves = append(octaves, o)
		}
	}
	sort.Ints(octaves)
	return octaves
}

// OctaveCount is exactly the size of the effective octave selection.
func (c Config) OctaveCount() int {
	return len(c.EffectiveOctaves())
}

// FretWindow returns the half-open fret range [start, end) to render.
// ShowAllPositions and degenerate windows fall back to the whole neck.
func (c Config) FretWindow() (int, int) {
	if c.ShowAllPositions || c.VisibleFretEnd <= c.VisibleFretStart {
		return 0, c.FretCount
	}
	start, end := c.VisibleFretStart, c.VisibleFretEnd
	if start < 0 {
		start = 0
	}
	if end > c.FretCount {
		end = c.FretCount
	}
	return start, end
}

// WithRoot returns a copy with a new root pitch class.
func (c Config) WithRoot(pc int) Config {
	c.Root = ((pc % 12) + 12) % 12
	return c
}

// WithView returns a copy with a new view mode.
func (c Config) WithView(v ViewMode) Config {
	c.View = v
	return c
}

// WithScale returns a copy selecting a scale and mode.
func (c Config) WithScale(name string, modeIndex int) Config {
	c.ScaleName = name
	c.ModeIndex = modeIndex
	return c
}

// WithChord returns a copy selecting a chord type and inversion.
func (c Config) WithChord(typ string, inv chord.Inversion) Config {
	c.ChordType = typ
	c.Inversion = inv
	return c
}

// WithTuning returns a copy with a new tuning.
func (c Config) WithTuning(t tuning.Tuning) Config {
	c.Tuning = t
	return c
}

// WithOctaves returns a copy with a new octave selection. The slice is
// copied so later caller mutation cannot leak in.
func (c Config) WithOctaves(octaves []int) Config {
	c.SelectedOctaves = append([]int(nil), octaves...)
	return c
}

// WithIntervals returns a copy with a new interval selection.
func (c Config) WithIntervals(intervals []int) Config {
	c.SelectedIntervals = append([]int(nil), intervals...)
	return c
}

// WithLayout returns a copy with a new presentation layout.
func (c Config) WithLayout(l Layout) Config {
	c.Layout = l
	return c
}

// WithFretWindow returns a copy restricting the visible frets.
func (c Config) WithFretWindow(start, end int) Config {
	c.VisibleFretStart = start
	c.VisibleFretEnd = end
	c.ShowAllPositions = false
	return c
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two configs describe the same fretboard. Suitable
// as a memoization key check for callers that cache highlight maps.
func (c Config) Equal(other Config) bool {
	if c.Root != other.Root || c.View != other.View ||
		c.ScaleName != other.ScaleName || c.ModeIndex != other.ModeIndex ||
		c.ChordType != other.ChordType || c.Inversion != other.Inversion ||
		c.FretCount != other.FretCount ||
		c.ShowAdditionalOctaves != other.ShowAdditionalOctaves ||
		c.ShowAllPositions != other.ShowAllPositions ||
		c.VisibleFretStart != other.VisibleFretStart ||
		c.VisibleFretEnd != other.VisibleFretEnd ||
		c.Layout != other.Layout {
		return false
	}
	if !intsEqual(c.SelectedOctaves, other.SelectedOctaves) ||
		!intsEqual(c.SelectedIntervals, other.SelectedIntervals) {
		return false
	}
	if c.Tuning.Strings() != other.Tuning.Strings() {
		return false
	}
	for i := range c.Tuning.Open {
		if !c.Tuning.Open[i].Equal(other.Tuning.Open[i]) {
			return false
		}
	}
	return true
}
