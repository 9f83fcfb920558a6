package chord

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/util"
)

// Match is one catalog chord that accounts for a set of sounding notes.
type Match struct {
	Root      int
	Type      string
	Inversion Inversion
	Name      string
}

// Key builds a stable string key for a set of MIDI notes, sorted ascending
// and dash-joined. Equal note sets always produce equal keys.
func Key(notes []int) string {
	sorted := append([]int(nil), notes...)
	sort.Ints(sorted)
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func classSet(notes []int) []int {
	pcs := make([]int, len(notes))
	for i, n := range notes {
		pcs[i] = ((n % 12) + 12) % 12
	}
	return util.Dedupe(pcs)
}

func sameSet(a, b []int) bool {
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

// Identify finds every catalog chord whose pitch-class set matches the
// sounding notes, in any inversion. The lowest sounding note decides the
// reported inversion. Matches come back in catalog order, roots ascending
// within a type, so output is deterministic for a given input.
func Identify(midiNotes []int) []Match {
	if len(midiNotes) == 0 {
		return nil
	}
	want := classSet(midiNotes)
	lowest := midiNotes[0]
	for _, n := range midiNotes {
		if n < lowest {
			lowest = n
		}
	}
	bass := ((lowest % 12) + 12) % 12

	var matches []Match
	for _, c := range catalog {
		for root := 0; root < 12; root++ {
			tones := c.PitchClassSet(root)
			if !sameSet(classSet(tones), want) {
				continue
			}
			inv := RootPosition
			for i, pc := range tones {
				if pc == bass {
					inv = Inversion(i)
					break
				}
			}
			matches = append(matches, Match{
				Root:      root,
				Type:      c.Type,
				Inversion: inv,
				Name:      c.DisplayName(root, inv, pitch.Sharp),
			})
		}
	}
	return matches
}

type noteEvent struct {
	tick int64
	off  bool
	note int
}

// FromSMF sweeps the note on/off events of a standard MIDI file and returns
// the distinct note sets that sound together, in time order. Single notes
// are skipped; consecutive identical sets collapse.
func FromSMF(s *smf.SMF) [][]int {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{tick: absTicks, note: int(key)})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{tick: absTicks, off: true, note: int(key)})
			}
		}
	}

	// note-offs first at equal ticks, so re-struck chords don't self-overlap
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	pressed := make(map[int]bool)
	var sets [][]int
	var lastKey string
	for _, evt := range events {
		if evt.off {
			delete(pressed, evt.note)
			continue
		}
		pressed[evt.note] = true
		if len(pressed) < 2 {
			continue
		}
		notes := make([]int, 0, len(pressed))
		for n := range pressed {
			notes = append(notes, n)
		}
		sort.Ints(notes)
		if key := Key(notes); key != lastKey {
			sets = append(sets, notes)
			lastKey = key
		}
	}
	return sets
}
