package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func buildSMF(t *testing.T, chords [][]uint8) *smf.SMF {
	t.Helper()
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var track smf.Track
	for _, notes := range chords {
		for _, n := range notes {
			track.Add(0, midi.NoteOn(0, n, 100))
		}
		for i, n := range notes {
			delta := uint32(0)
			if i == 0 {
				delta = 960
			}
			track.Add(delta, midi.NoteOff(0, n))
		}
	}
	track.Close(0)
	assert.NoError(t, s.Add(track))
	return s
}

func TestFromSMF(t *testing.T) {
	assert := assert.New(t)
	s := buildSMF(t, [][]uint8{{60, 64, 67}, {60, 65, 69}})

	sets := FromSMF(s)
	var keys []string
	for _, set := range sets {
		keys = append(keys, Key(set))
	}
	// build-up sets appear as each note lands; the full chords must be there
	assert.Contains(keys, "60-64-67")
	assert.Contains(keys, "60-65-69")

	// the two chords never overlap
	assert.NotContains(keys, "60-64-65-67-69")
}

func TestFromSMFEmpty(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	assert.Empty(t, FromSMF(s))
}
