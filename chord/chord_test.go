package chord

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fretmap/fretmap/pitch"
)

func note(midi int) pitch.Note {
	n, err := pitch.FromMIDI(midi)
	if err != nil {
		panic(err)
	}
	return n
}

func TestVoicingsAreStrictlyAscending(t *testing.T) {
	c3 := note(48)
	for _, typ := range Types() {
		c, _ := Get(typ)
		for inv := RootPosition; inv <= Third; inv++ {
			t.Run(fmt.Sprintf("%v inversion %v", typ, inv), func(t *testing.T) {
				voicing, err := c.Voicing(c3, inv)
				assert.NoError(t, err)
				for i := 1; i < len(voicing); i++ {
					assert.Greater(t, voicing[i], voicing[i-1])
				}
			})
		}
	}
}

func TestInversionsPreservePitchClasses(t *testing.T) {
	c3 := note(48)
	for _, typ := range Types() {
		c, _ := Get(typ)
		t.Run(typ, func(t *testing.T) {
			reference, err := c.Voicing(c3, RootPosition)
			assert.NoError(t, err)
			tones := len(c.PitchClassSet(48 % 12))

			for inv := 0; inv <= tones; inv++ {
				voicing, err := c.Voicing(c3, Inversion(inv))
				assert.NoError(t, err)
				assert.Equal(t, classSet(reference), classSet(voicing))
			}

			// inversion == tone count cycles back to root position
			wrapped, err := c.Voicing(c3, Inversion(tones))
			assert.NoError(t, err)
			assert.Equal(t, reference, wrapped)
		})
	}
}

func TestCMajorVoicings(t *testing.T) {
	assert := assert.New(t)
	c, ok := Get("major")
	assert.True(ok)
	c3 := note(48)

	root, err := c.Voicing(c3, RootPosition)
	assert.NoError(err)
	assert.Equal([]int{48, 52, 55}, root) // C3 E3 G3

	first, err := c.Voicing(c3, First)
	assert.NoError(err)
	assert.Equal([]int{52, 55, 60}, first) // E3 G3 C4

	second, err := c.Voicing(c3, Second)
	assert.NoError(err)
	assert.Equal([]int{55, 60, 64}, second) // G3 C4 E4
}

func TestVoicingOutOfRange(t *testing.T) {
	c, _ := Get("major 9")
	_, err := c.Voicing(note(125), RootPosition)
	var rangeErr *pitch.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestEmptyChordYieldsEmptyVoicing(t *testing.T) {
	empty := Chord{Type: "empty"}
	voicing, err := empty.Voicing(note(48), First)
	assert.NoError(t, err)
	assert.Empty(t, voicing)
}

func TestGetMiss(t *testing.T) {
	_, ok := Get("quartal mystery")
	assert.False(t, ok)
}

func TestPitchClassSetCollapsesDuplicates(t *testing.T) {
	c := Chord{Type: "octaves", Intervals: []int{0, 12, 7}}
	assert.Equal(t, []int{0, 7}, c.PitchClassSet(0))
}

func TestDisplayName(t *testing.T) {
	assert := assert.New(t)

	major, _ := Get("major")
	assert.Equal("C", major.DisplayName(0, RootPosition, pitch.Sharp))
	assert.Equal("C/E", major.DisplayName(0, First, pitch.Sharp))
	assert.Equal("C/G", major.DisplayName(0, Second, pitch.Sharp))
	assert.Equal("C", major.DisplayName(0, Third, pitch.Sharp)) // cycles back

	m7, _ := Get("minor 7")
	assert.Equal("Am7", m7.DisplayName(9, RootPosition, pitch.Sharp))
	assert.Equal("Ebm7/Gb", m7.DisplayName(3, First, pitch.Flat))
}

func TestKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("60-64-67", Key([]int{64, 60, 67}))
	assert.Equal("60", Key([]int{60}))

	// input must not be reordered by key generation
	notes := []int{67, 60, 64}
	Key(notes)
	assert.Equal([]int{67, 60, 64}, notes)
}

func TestIdentify(t *testing.T) {
	assert := assert.New(t)

	matches := Identify([]int{60, 64, 67})
	assert.Len(matches, 1)
	assert.Equal("C", matches[0].Name)
	assert.Equal(RootPosition, matches[0].Inversion)

	matches = Identify([]int{64, 67, 72})
	assert.Len(matches, 1)
	assert.Equal("C/E", matches[0].Name)
	assert.Equal(First, matches[0].Inversion)

	assert.Empty(Identify(nil))
	assert.Empty(Identify([]int{60, 61, 62})) // no catalog chord is a cluster
}

func TestIdentifyAmbiguous(t *testing.T) {
	// C6 and Am7 share a pitch-class set
	matches := Identify([]int{60, 64, 67, 69})
	var names []string
	for _, m := range matches {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"Am7/C", "C6"}, names)
}
