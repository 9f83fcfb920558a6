// Package quiz derives question/answer records from the scale and chord
// catalogs. It owns no question content of its own: every answer is
// computed from the catalogs, so questions can never drift out of sync
// with what the fretboard shows.
package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/scale"
)

// Kind enumerates the question templates.
type Kind int

const (
	KindScaleNotes Kind = iota
	KindDegreeOf
	KindChordTones
	KindIntervalName
)

func (k Kind) String() string {
	switch k {
	case KindScaleNotes:
		return "scale-notes"
	case KindDegreeOf:
		return "degree-of"
	case KindChordTones:
		return "chord-tones"
	}
	return "interval-name"
}

// Question is one generated prompt with its computed answer and shuffled
// multiple-choice options. The answer is always among the choices.
type Question struct {
	ID      string
	Kind    Kind
	Prompt  string
	Answer  string
	Choices []string
}

// Generator produces questions from a seeded source, so a session can be
// replayed deterministically. IDs come from uuid and are unique per call.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func spellSet(pcs []int, pref pitch.Accidental) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pitch.ClassName(pc, pref)
	}
	return strings.Join(names, " ")
}

func (g *Generator) question(kind Kind, prompt, answer string, distractors []string) Question {
	choices := append([]string{answer}, distractors...)
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return Question{
		ID:      uuid.New().String(),
		Kind:    kind,
		Prompt:  prompt,
		Answer:  answer,
		Choices: choices,
	}
}

// ScaleNotes asks for the notes of a scale rooted at root.
func (g *Generator) ScaleNotes(scaleName string, root int) (Question, error) {
	sc, ok := scale.Get(scaleName)
	if !ok {
		return Question{}, fmt.Errorf("unknown scale %q", scaleName)
	}
	pref := scale.SpellingFor(root)
	answer := spellSet(sc.PitchClassSet(root), pref)

	var distractors []string
	for len(distractors) < 3 {
		wrongRoot := g.rng.Intn(12)
		if wrongRoot == ((root%12)+12)%12 {
			continue
		}
		d := spellSet(sc.PitchClassSet(wrongRoot), scale.SpellingFor(wrongRoot))
		if d == answer {
			continue
		}
		distractors = append(distractors, d)
	}
	prompt := fmt.Sprintf("Which notes make up the %v %v scale?",
		pitch.ClassName(root, pref), sc.Name)
	return g.question(KindScaleNotes, prompt, answer, distractors), nil
}

// DegreeOf asks which scale degree a note is within a scale, picking a
// member note at random.
func (g *Generator) DegreeOf(scaleName string, root int) (Question, error) {
	sc, ok := scale.Get(scaleName)
	if !ok {
		return Question{}, fmt.Errorf("unknown scale %q", scaleName)
	}
	pref := scale.SpellingFor(root)
	set := sc.PitchClassSet(root)
	pc := set[g.rng.Intn(len(set))]
	degree := sc.DegreeOf(root, pc)
	answer := fmt.Sprintf("%v", degree)

	var distractors []string
	for len(distractors) < 3 {
		wrong := g.rng.Intn(len(set)) + 1
		if wrong == degree {
			continue
		}
		distractors = append(distractors, fmt.Sprintf("%v", wrong))
	}
	prompt := fmt.Sprintf("What degree of the %v %v scale is %v?",
		pitch.ClassName(root, pref), sc.Name, pitch.ClassName(pc, pref))
	return g.question(KindDegreeOf, prompt, answer, distractors), nil
}

// ChordTones asks for the tones of a chord built on root.
func (g *Generator) ChordTones(chordType string, root int) (Question, error) {
	c, ok := chord.Get(chordType)
	if !ok {
		return Question{}, fmt.Errorf("unknown chord type %q", chordType)
	}
	pref := scale.SpellingFor(root)
	answer := spellSet(c.PitchClassSet(root), pref)

	var distractors []string
	for len(distractors) < 3 {
		wrongRoot := g.rng.Intn(12)
		if wrongRoot == ((root%12)+12)%12 {
			continue
		}
		d := spellSet(c.PitchClassSet(wrongRoot), scale.SpellingFor(wrongRoot))
		if d == answer {
			continue
		}
		distractors = append(distractors, d)
	}
	prompt := fmt.Sprintf("Which notes make up %v?", c.DisplayName(root, chord.RootPosition, pref))
	return g.question(KindChordTones, prompt, answer, distractors), nil
}

// IntervalName asks for the name of the interval between two random notes
// within an octave.
func (g *Generator) IntervalName() Question {
	low, _ := pitch.FromMIDI(48 + g.rng.Intn(12))
	semitones := 1 + g.rng.Intn(12)
	high, _ := low.Transpose(semitones, pitch.Sharp)
	iv := pitch.Between(low, high)
	answer := iv.Name()

	var distractors []string
	for len(distractors) < 3 {
		wrong := pitch.Interval{Semitones: 1 + g.rng.Intn(12)}
		if wrong.Name() == answer {
			continue
		}
		distractors = append(distractors, wrong.Name())
	}
	prompt := fmt.Sprintf("What interval is %v up to %v?", low, high)
	return g.question(KindIntervalName, prompt, answer, distractors)
}

// Random draws one question of a random kind over random catalog entries.
func (g *Generator) Random() (Question, error) {
	root := g.rng.Intn(12)
	switch Kind(g.rng.Intn(4)) {
	case KindScaleNotes:
		names := scale.Names()
		return g.ScaleNotes(names[g.rng.Intn(len(names))], root)
	case KindDegreeOf:
		names := scale.Names()
		return g.DegreeOf(names[g.rng.Intn(len(names))], root)
	case KindChordTones:
		types := chord.Types()
		return g.ChordTones(types[g.rng.Intn(len(types))], root)
	}
	return g.IntervalName(), nil
}
