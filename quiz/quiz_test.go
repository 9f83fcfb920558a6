package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleNotesQuestion(t *testing.T) {
	assert := assert.New(t)
	g := NewGenerator(1)

	q, err := g.ScaleNotes("major", 0)
	assert.NoError(err)
	assert.Equal(KindScaleNotes, q.Kind)
	assert.Equal("C D E F G A B", q.Answer)
	assert.Len(q.Choices, 4)
	assert.Contains(q.Choices, q.Answer)
	assert.NotEmpty(q.ID)
}

func TestChordTonesQuestion(t *testing.T) {
	assert := assert.New(t)
	g := NewGenerator(1)

	q, err := g.ChordTones("minor 7", 9) // Am7
	assert.NoError(err)
	assert.Equal("A C E G", q.Answer)
	assert.Contains(q.Prompt, "Am7")
	assert.Contains(q.Choices, q.Answer)
}

func TestDegreeOfAnswerIsCorrect(t *testing.T) {
	assert := assert.New(t)
	g := NewGenerator(7)

	q, err := g.DegreeOf("major", 7)
	assert.NoError(err)
	assert.Contains(q.Choices, q.Answer)
	for _, c := range q.Choices {
		assert.NotEmpty(c)
	}
}

func TestIntervalNameQuestion(t *testing.T) {
	assert := assert.New(t)
	q := NewGenerator(3).IntervalName()
	assert.Equal(KindIntervalName, q.Kind)
	assert.Len(q.Choices, 4)
	assert.Contains(q.Choices, q.Answer)
}

func TestDistractorsNeverEqualAnswer(t *testing.T) {
	assert := assert.New(t)
	g := NewGenerator(42)
	for i := 0; i < 50; i++ {
		q, err := g.Random()
		assert.NoError(err)
		var hits int
		for _, c := range q.Choices {
			if c == q.Answer {
				hits++
			}
		}
		assert.Equal(1, hits, "prompt %q", q.Prompt)
	}
}

func TestSameSeedSameQuestions(t *testing.T) {
	assert := assert.New(t)
	a := NewGenerator(99)
	b := NewGenerator(99)
	for i := 0; i < 20; i++ {
		qa, errA := a.Random()
		qb, errB := b.Random()
		assert.NoError(errA)
		assert.NoError(errB)
		assert.Equal(qa.Prompt, qb.Prompt)
		assert.Equal(qa.Answer, qb.Answer)
		assert.Equal(qa.Choices, qb.Choices)
	}
}

func TestUnknownCatalogEntries(t *testing.T) {
	assert := assert.New(t)
	g := NewGenerator(1)

	_, err := g.ScaleNotes("nope", 0)
	assert.Error(err)
	_, err = g.DegreeOf("nope", 0)
	assert.Error(err)
	_, err = g.ChordTones("nope", 0)
	assert.Error(err)
}
