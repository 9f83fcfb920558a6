package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/tuning"
)

func TestEffectiveOctavesDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg := Default().WithOctaves(nil)
	assert.Equal([]int{3}, cfg.EffectiveOctaves())
	assert.Equal(1, cfg.OctaveCount())
}

func TestEffectiveOctavesSortedDistinct(t *testing.T) {
	cfg := Default().WithOctaves([]int{4, 2, 4, 3})
	assert.Equal(t, []int{2, 3, 4}, cfg.EffectiveOctaves())
}

func TestOctaveCountMatchesSelection(t *testing.T) {
	cfg := Default().WithOctaves([]int{2, 3, 4})
	assert.Equal(t, 3, cfg.OctaveCount())
}

func TestWithMethodsCopy(t *testing.T) {
	assert := assert.New(t)
	base := Default()

	changed := base.WithRoot(7).
		WithView(ViewChordInversions).
		WithChord("minor 7", chord.First).
		WithOctaves([]int{2})

	// the original config is untouched
	assert.Equal(0, base.Root)
	assert.Equal(ViewScales, base.View)
	assert.Equal([]int{3}, base.SelectedOctaves)

	assert.Equal(7, changed.Root)
	assert.Equal(chord.First, changed.Inversion)

	// the selection slice is copied, not aliased
	octaves := []int{5}
	aliased := base.WithOctaves(octaves)
	octaves[0] = 9
	assert.Equal([]int{5}, aliased.SelectedOctaves)
}

func TestWithRootNormalizes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Default().WithRoot(-1).Root)
	assert.Equal(2, Default().WithRoot(14).Root)
}

func TestFretWindow(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	start, end := cfg.FretWindow()
	assert.Equal(0, start)
	assert.Equal(cfg.FretCount, end)

	windowed := cfg.WithFretWindow(5, 9)
	start, end = windowed.FretWindow()
	assert.Equal(5, start)
	assert.Equal(9, end)

	// ShowAllPositions overrides the window
	windowed.ShowAllPositions = true
	start, end = windowed.FretWindow()
	assert.Equal(0, start)
	assert.Equal(cfg.FretCount, end)

	// degenerate windows fall back to the whole neck
	start, end = cfg.WithFretWindow(9, 9).FretWindow()
	assert.Equal(0, start)
	assert.Equal(cfg.FretCount, end)
}

func TestConfigEqual(t *testing.T) {
	assert := assert.New(t)
	a := Default()
	b := Default()
	assert.True(a.Equal(b))

	assert.False(a.Equal(b.WithRoot(2)))
	assert.False(a.Equal(b.WithOctaves([]int{2, 3})))

	drop, _ := tuning.Get("drop d")
	assert.False(a.Equal(b.WithTuning(drop)))

	left := b.WithLayout(Layout{Handedness: LeftHanded})
	assert.False(a.Equal(left))
}

func TestParseViewMode(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{
		"intervals", "scales", "chord-inversions",
		"open-chords", "barre-chords", "advanced-chords",
	} {
		v, err := ParseViewMode(name)
		assert.NoError(err)
		assert.Equal(name, v.String())
	}
	_, err := ParseViewMode("heatmap")
	assert.Error(err)

	assert.False(ViewScales.IsChord())
	assert.False(ViewIntervals.IsChord())
	assert.True(ViewBarreChords.IsChord())
}
