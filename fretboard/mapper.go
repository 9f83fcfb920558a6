package fretboard

import (
	"errors"
	"fmt"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/scale"
	"github.com/fretmap/fretmap/util"
)

var (
	ErrUnknownScale = errors.New("unknown scale")
	ErrUnknownChord = errors.New("unknown chord type")
)

// Role classifies why a cell is highlighted.
type Role int

const (
	RoleScaleDegree Role = iota
	RoleChordTone
	RoleRoot
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleChordTone:
		return "chord-tone"
	}
	return "scale-degree"
}

// Cell addresses a fretboard position: string 0 is the lowest-pitched
// string, fret 0 the open string.
type Cell struct {
	String int
	Fret   int
}

// Highlight describes how one cell should be rendered. Additional marks
// chord tones outside the selected octaves, shown only when the config
// asks for them and never as primary.
type Highlight struct {
	MIDI       int
	Role       Role
	Additional bool
	Degree     int    // 1-based degree among the active tones
	Interval   string // short label relative to the effective root
	ColorKey   string
}

// HighlightMap is the full rendering instruction set for one config. It is
// derived data: recomputed on demand, never persisted.
type HighlightMap struct {
	Cells   map[Cell]Highlight
	Octaves []int // octaves actually rendered, sorted
	Root    int   // effective root pitch class
	Label   string
}

// Compute is the sole entry point for rendering code. It is pure: no state
// survives between calls, and equal configs yield equal maps.
func Compute(cfg Config) (HighlightMap, error) {
	if cfg.View.IsChord() {
		return computeChord(cfg)
	}
	return computeScale(cfg)
}

func computeScale(cfg Config) (HighlightMap, error) {
	parent, ok := scale.Get(cfg.ScaleName)
	if !ok {
		return HighlightMap{}, fmt.Errorf("%w: %q", ErrUnknownScale, cfg.ScaleName)
	}
	mode := parent.Mode(cfg.ModeIndex)
	root := parent.ModeRoot(cfg.Root, cfg.ModeIndex)
	octaves := cfg.EffectiveOctaves()
	pref := scale.SpellingFor(root)

	// mode 0 is the scale itself; use its catalog name rather than "Ionian"
	// or a synthetic "Mode 1"
	label := mode.Name
	if n := len(parent.Steps); ((cfg.ModeIndex%n)+n)%n == 0 {
		label = parent.Name
	}

	m := HighlightMap{
		Cells:   make(map[Cell]Highlight),
		Octaves: octaves,
		Root:    root,
		Label:   fmt.Sprintf("%v %v", pitch.ClassName(root, pref), label),
	}

	octaveSet := make(map[int]bool)
	for _, o := range octaves {
		octaveSet[o] = true
	}
	intervalSet := make(map[int]bool)
	for _, iv := range cfg.SelectedIntervals {
		intervalSet[((iv%12)+12)%12] = true
	}

	start, end := cfg.FretWindow()
	for s := 0; s < cfg.StringCount(); s++ {
		for f := start; f < end; f++ {
			midi, err := cfg.Tuning.MIDIAt(s, f)
			if err != nil {
				continue // above the MIDI range, nothing to highlight
			}
			pc := midi % 12
			degree := mode.DegreeOf(root, pc)
			if degree == 0 {
				continue
			}
			offset := ((pc - root) + 12) % 12
			if cfg.View == ViewIntervals {
				// interval view filters by selected offsets across all
				// octaves; empty selection means every interval
				if len(intervalSet) > 0 && !intervalSet[offset] {
					continue
				}
			} else if !octaveSet[midi/12-1] {
				continue
			}
			role := RoleScaleDegree
			colorKey := pitch.ShortLabel(offset)
			if pc == root {
				role = RoleRoot
				colorKey = "root"
			}
			m.Cells[Cell{String: s, Fret: f}] = Highlight{
				MIDI:     midi,
				Role:     role,
				Degree:   degree,
				Interval: pitch.ShortLabel(offset),
				ColorKey: colorKey,
			}
		}
	}
	return m, nil
}

func computeChord(cfg Config) (HighlightMap, error) {
	c, ok := chord.Get(cfg.ChordType)
	if !ok {
		return HighlightMap{}, fmt.Errorf("%w: %q", ErrUnknownChord, cfg.ChordType)
	}
	root := ((cfg.Root % 12) + 12) % 12
	selected := cfg.EffectiveOctaves()
	pref := scale.SpellingFor(root)

	rootNote := pitch.Note{Class: root, Octave: selected[0], Spelling: pref}
	voicing, err := c.Voicing(rootNote, cfg.Inversion)
	if err != nil {
		return HighlightMap{}, err
	}

	var span []int
	for _, midi := range voicing {
		span = append(span, midi/12-1)
	}
	octaves := renderOctaves(selected, span)

	tones := c.PitchClassSet(root)
	toneIndex := make(map[int]int, len(tones))
	for i, pc := range tones {
		toneIndex[pc] = i
	}
	octaveSet := make(map[int]bool)
	for _, o := range octaves {
		octaveSet[o] = true
	}

	m := HighlightMap{
		Cells:   make(map[Cell]Highlight),
		Octaves: octaves,
		Root:    root,
		Label:   c.DisplayName(root, cfg.Inversion, pref),
	}

	start, end := cfg.FretWindow()
	for s := 0; s < cfg.StringCount(); s++ {
		for f := start; f < end; f++ {
			midi, err := cfg.Tuning.MIDIAt(s, f)
			if err != nil {
				continue
			}
			pc := midi % 12
			idx, in := toneIndex[pc]
			if !in {
				continue
			}
			primary := octaveSet[midi/12-1]
			if !primary && !cfg.ShowAdditionalOctaves {
				continue
			}
			offset := ((pc - root) + 12) % 12
			role := RoleChordTone
			colorKey := pitch.ShortLabel(offset)
			if pc == root {
				role = RoleRoot
				colorKey = "root"
			}
			if !primary {
				colorKey = "octave"
			}
			m.Cells[Cell{String: s, Fret: f}] = Highlight{
				MIDI:       midi,
				Role:       role,
				Additional: !primary,
				Degree:     idx + 1,
				Interval:   pitch.ShortLabel(offset),
				ColorKey:   colorKey,
			}
		}
	}
	return m, nil
}

// renderOctaves resolves the octave-selection edge case. The user's
// selection wins; a voicing spilling into one adjacent octave extends it,
// because truncating the chord there would render an incoherent voicing.
// A voicing whose natural span reaches further than that replaces the
// selection with the full span.
func renderOctaves(selected, span []int) []int {
	if len(span) == 0 {
		return selected
	}
	minSel, maxSel := selected[0], selected[len(selected)-1]
	for _, o := range span {
		if o < minSel-1 || o > maxSel+1 {
			return util.Dedupe(span)
		}
	}
	return util.Dedupe(append(append([]int(nil), selected...), span...))
}
