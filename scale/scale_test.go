package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fretmap/fretmap/pitch"
)

func TestEveryScaleSetIsClosed(t *testing.T) {
	for _, name := range Names() {
		s, _ := Get(name)
		for root := 0; root < 12; root++ {
			t.Run(fmt.Sprintf("%v at %v", name, root), func(t *testing.T) {
				set := s.PitchClassSet(root)
				assert.Len(t, set, len(s.Steps))

				seen := make(map[int]bool)
				for _, pc := range set {
					assert.False(t, seen[pc], "duplicate pitch class %v", pc)
					seen[pc] = true
				}
			})
		}
	}
}

func TestCMajorSet(t *testing.T) {
	s, ok := Get("major")
	assert.True(t, ok)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, s.PitchClassSet(0))
}

func TestChromaticCoversEverything(t *testing.T) {
	s, _ := Get("chromatic")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, s.PitchClassSet(0))
}

func TestDegreeOf(t *testing.T) {
	assert := assert.New(t)
	s, _ := Get("major")
	assert.Equal(1, s.DegreeOf(0, 0))
	assert.Equal(3, s.DegreeOf(0, 4))
	assert.Equal(7, s.DegreeOf(0, 11))
	assert.Equal(0, s.DegreeOf(0, 1)) // not in scale: a result, not an error
	assert.True(s.Contains(0, 7))
	assert.False(s.Contains(0, 6))
}

func TestModeRootsAreDistinct(t *testing.T) {
	for _, name := range Names() {
		s, _ := Get(name)
		t.Run(name, func(t *testing.T) {
			seen := make(map[int]bool)
			for i := range s.Steps {
				root := s.ModeRoot(0, i)
				assert.False(t, seen[root], "mode %v root %v repeats", i, root)
				seen[root] = true
			}
			assert.Len(t, seen, len(s.Steps))
		})
	}
}

func TestModeRotation(t *testing.T) {
	assert := assert.New(t)
	s, _ := Get("major")

	dorian := s.Mode(1)
	assert.Equal("Dorian", dorian.Name)
	assert.Equal([]int{2, 1, 2, 2, 2, 1, 2}, dorian.Steps)

	// D dorian has the same pitch classes as C major
	assert.ElementsMatch(s.PitchClassSet(0), dorian.PitchClassSet(s.ModeRoot(0, 1)))

	// index wraps mod length
	assert.Equal(s.Mode(0).Steps, s.Mode(7).Steps)
	assert.Equal(2, s.ModeRoot(0, 8))
}

func TestAvailableModes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{
		"Ionian", "Dorian", "Phrygian", "Lydian",
		"Mixolydian", "Aeolian", "Locrian",
	}, AvailableModes("major"))
	assert.Empty(AvailableModes("blues"))
	assert.Empty(AvailableModes("no such scale"))

	// unnamed modes fall back to "Mode N"
	blues, _ := Get("blues")
	assert.Equal("Mode 2", blues.Mode(1).Name)
}

func TestGetMiss(t *testing.T) {
	_, ok := Get("hypermixolydian")
	assert.False(t, ok)
}

func TestSpellingFor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pitch.Sharp, SpellingFor(0))  // C
	assert.Equal(pitch.Flat, SpellingFor(5))   // F
	assert.Equal(pitch.Flat, SpellingFor(10))  // Bb
	assert.Equal(pitch.Sharp, SpellingFor(7))  // G
	assert.Equal(pitch.Sharp, SpellingFor(-5)) // G, negative input
}
