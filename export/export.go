// Package export renders voicings and scale runs as standard MIDI files so
// a highlighted shape can be heard, not just seen.
package export

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/scale"
)

const (
	ticksPerQuarter = 960
	velocity        = 96
)

func newFile(tempo float64) (*smf.SMF, smf.Track) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(tempo))
	return s, track
}

// Voicing writes the voicing as an ascending arpeggio of quarter notes
// followed by the block chord held for a whole note.
func Voicing(notes []int, tempo float64) (*smf.SMF, error) {
	s, track := newFile(tempo)

	for _, n := range notes {
		track.Add(0, midi.NoteOn(0, uint8(n), velocity))
		track.Add(ticksPerQuarter, midi.NoteOff(0, uint8(n)))
	}
	for _, n := range notes {
		track.Add(0, midi.NoteOn(0, uint8(n), velocity))
	}
	for i, n := range notes {
		delta := uint32(0)
		if i == 0 {
			delta = 4 * ticksPerQuarter
		}
		track.Add(delta, midi.NoteOff(0, uint8(n)))
	}

	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, err
	}
	return s, nil
}

// ScaleRun writes one octave of the scale from root, up and back down, as
// eighth notes.
func ScaleRun(sc scale.Scale, root pitch.Note, tempo float64) (*smf.SMF, error) {
	var run []int
	m := root.MIDI()
	run = append(run, m)
	for _, step := range sc.Steps {
		m += step
		run = append(run, m)
	}
	for i := len(run) - 2; i >= 0; i-- {
		run = append(run, run[i])
	}
	for _, n := range run {
		if _, err := pitch.FromMIDI(n); err != nil {
			return nil, err
		}
	}

	s, track := newFile(tempo)
	for _, n := range run {
		track.Add(0, midi.NoteOn(0, uint8(n), velocity))
		track.Add(ticksPerQuarter/2, midi.NoteOff(0, uint8(n)))
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, err
	}
	return s, nil
}
