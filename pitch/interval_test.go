package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalNames(t *testing.T) {
	cases := []struct {
		semitones int
		name      string
	}{
		{0, "unison"},
		{3, "minor third"},
		{4, "major third"},
		{6, "tritone"},
		{7, "perfect fifth"},
		{12, "octave"},
		{14, "major ninth"},
		{-7, "perfect fifth"},
		{30, "30 semitones"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v semitones", c.semitones), func(t *testing.T) {
			assert.Equal(t, c.name, Interval{Semitones: c.semitones}.Name())
		})
	}
}

func TestBetween(t *testing.T) {
	assert := assert.New(t)
	c4, _ := FromMIDI(60)
	e4, _ := FromMIDI(64)
	assert.Equal(4, Between(c4, e4).Semitones)
	assert.Equal(-4, Between(e4, c4).Semitones)
	assert.Equal("major third", Between(e4, c4).Name())
}

func TestInvert(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(8, Interval{Semitones: 4}.Invert().Semitones)  // M3 -> m6
	assert.Equal(0, Interval{Semitones: 0}.Invert().Semitones)  // unison stays
	assert.Equal(0, Interval{Semitones: 12}.Invert().Semitones) // octave reduces
	assert.Equal(8, Interval{Semitones: 16}.Invert().Semitones) // compound reduces first
}

func TestAddAndSimple(t *testing.T) {
	assert := assert.New(t)
	ninth := Interval{Semitones: 7}.Add(Interval{Semitones: 7})
	assert.Equal(14, ninth.Semitones)
	assert.Equal(2, ninth.Simple().Semitones)
}

func TestShortLabels(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("R", ShortLabel(0))
	assert.Equal("b3", ShortLabel(3))
	assert.Equal("5", ShortLabel(7))
	assert.Equal("7", ShortLabel(11))
	assert.Equal("R", ShortLabel(12))
	assert.Equal("b7", ShortLabel(-2))
}
