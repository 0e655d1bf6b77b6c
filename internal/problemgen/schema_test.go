package problemgen

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemSchema_Compiles(t *testing.T) {
	_, err := getCompiledSchema(ProblemSchema)
	require.NoError(t, err)
}

func TestDecodeProblem_RoundTrip(t *testing.T) {
	g := New(Config{Seed: 21})
	for _, topic := range AllTopics() {
		p := g.Generate(topic, 4, DifficultyHard)

		raw, err := json.Marshal(p)
		require.NoError(t, err)

		got, err := DecodeProblem(raw)
		require.NoError(t, err, "topic %s: %s", topic, raw)

		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.Question, got.Question)
		assert.Equal(t, p.Answer.String(), got.Answer.String())
		assert.Equal(t, p.Answer.Kind(), got.Answer.Kind())
		assert.Len(t, got.AcceptableAnswers, len(p.AcceptableAnswers))
		assert.True(t, CheckAnswer(got, p.Answer.String()))
	}
}

func TestDecodeProblem_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing answer", `{"id":"x","topic":"addition","yearLevel":1,"difficulty":"easy","question":"1 + 1 = ?"}`},
		{"bad topic", `{"id":"x","topic":"geometry","yearLevel":1,"difficulty":"easy","question":"q","answer":2}`},
		{"year out of range", `{"id":"x","topic":"addition","yearLevel":7,"difficulty":"easy","question":"q","answer":2}`},
		{"object answer", `{"id":"x","topic":"addition","yearLevel":1,"difficulty":"easy","question":"q","answer":{"v":2}}`},
		{"extra field", `{"id":"x","topic":"addition","yearLevel":1,"difficulty":"easy","question":"q","answer":2,"score":10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProblem([]byte(tt.doc))
			require.Error(t, err)

			var serr *SchemaError
			assert.True(t, errors.As(err, &serr), "want *SchemaError, got %T", err)
			assert.Equal(t, "math-problem", serr.Schema)
		})
	}
}

func TestDecodeProblem_MinimalDocument(t *testing.T) {
	doc := `{"id":"x","topic":"time","yearLevel":3,"difficulty":"medium","question":"What time does this clock show?","answer":"3:30","acceptableAnswers":["3:30","half past 3"]}`

	p, err := DecodeProblem([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, TopicTime, p.Topic)
	assert.Equal(t, AnswerFormatted, p.Answer.Kind())
	assert.True(t, CheckAnswer(p, "Half past 3"))
	assert.False(t, CheckAnswer(p, "3"))
}
