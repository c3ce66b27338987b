package parser

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoQuestions = `[
  {
    "text": "Which gas do plants release during photosynthesis?",
    "alternativeA": "Oxygen",
    "alternativeB": "Carbon dioxide",
    "alternativeC": "Nitrogen",
    "alternativeD": "Helium",
    "correctAnswer": "A",
    "justification": "Photosynthesis splits water and releases oxygen."
  },
  {
    "text": "Where does photosynthesis happen?",
    "alternativeA": "Mitochondria",
    "alternativeB": "Chloroplasts",
    "alternativeC": "Nucleus",
    "alternativeD": "Ribosomes",
    "correctAnswer": "B",
    "justification": "Chloroplasts hold chlorophyll."
  }
]`

func TestParseQuestions(t *testing.T) {
	batch, err := ParseQuestions(twoQuestions)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 2)
	assert.Empty(t, batch.Dropped)

	first := batch.Questions[0]
	assert.Equal(t, 0, first.OrdinalIndex)
	assert.Equal(t, "Which gas do plants release during photosynthesis?", first.Text)
	assert.Equal(t, "Oxygen", first.AlternativeA)
	assert.Equal(t, "Helium", first.AlternativeD)
	assert.Equal(t, domain.AlternativeA, first.CorrectAnswer)
	assert.Equal(t, "Photosynthesis splits water and releases oxygen.", first.Justification)

	assert.Equal(t, 1, batch.Questions[1].OrdinalIndex)
	assert.Equal(t, domain.AlternativeB, batch.Questions[1].CorrectAnswer)
}

func TestParseQuestions_PreservesCount(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		items := make([]string, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, fmt.Sprintf(`{"text":"Q%d","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"C"}`, i))
		}
		batch, err := ParseQuestions("[" + strings.Join(items, ",") + "]")
		require.NoError(t, err)
		require.Len(t, batch.Questions, n)
		for i, q := range batch.Questions {
			assert.Equal(t, i, q.OrdinalIndex)
			assert.NotEmpty(t, q.Justification)
		}
	}
}

func TestParseQuestions_CaseInsensitiveAndPortugueseKeys(t *testing.T) {
	payload := `[{
		"PerguntaTexto": "Quanto é 2+2?",
		"AlternativaA": "3",
		"ALTERNATIVAB": "4",
		"alternativaC": "5",
		"alternativaD": "6",
		"RespostaCorreta": "b",
		"Justificativa": "2+2=4"
	}]`

	batch, err := ParseQuestions(payload)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)

	q := batch.Questions[0]
	assert.Equal(t, "Quanto é 2+2?", q.Text)
	assert.Equal(t, "4", q.AlternativeB)
	assert.Equal(t, domain.AlternativeB, q.CorrectAnswer)
	assert.Equal(t, "2+2=4", q.Justification)
}

func TestParseQuestions_MissingJustificationGetsSentinel(t *testing.T) {
	tests := map[string]string{
		"absent":     `[{"text":"Q","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"D"}]`,
		"blank":      `[{"text":"Q","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"D","justification":"   "}]`,
		"null":       `[{"text":"Q","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"D","justificativa":null}]`,
		"non-string": `[{"text":"Q","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"D","justification":42}]`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			batch, err := ParseQuestions(payload)
			require.NoError(t, err)
			require.Len(t, batch.Questions, 1)

			q := batch.Questions[0]
			assert.Equal(t, domain.SentinelJustification, q.Justification)
			assert.Equal(t, "Q", q.Text)
			assert.Equal(t, "a", q.AlternativeA)
			assert.Equal(t, "b", q.AlternativeB)
			assert.Equal(t, "c", q.AlternativeC)
			assert.Equal(t, "d", q.AlternativeD)
			assert.Equal(t, domain.AlternativeD, q.CorrectAnswer)
		})
	}
}

func TestParseQuestions_DropsRecordsMissingRequiredFields(t *testing.T) {
	payload := `[
		{"text":"keep","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"A","justification":"j"},
		{"alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"A"},
		{"text":"no C","alternativeA":"a","alternativeB":"b","alternativeD":"d","correctAnswer":"A"},
		{"text":"bad letter","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"E"},
		{"text":"keep too","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"c)"}
	]`

	batch, err := ParseQuestions(payload)
	require.NoError(t, err)

	require.Len(t, batch.Questions, 2)
	assert.Equal(t, "keep", batch.Questions[0].Text)
	assert.Equal(t, 0, batch.Questions[0].OrdinalIndex)
	assert.Equal(t, "keep too", batch.Questions[1].Text)
	assert.Equal(t, 1, batch.Questions[1].OrdinalIndex)
	assert.Equal(t, domain.AlternativeC, batch.Questions[1].CorrectAnswer)

	assert.Equal(t, []DroppedRecord{
		{Position: 1, Field: "text"},
		{Position: 2, Field: "alternativeC"},
		{Position: 3, Field: "correctAnswer"},
	}, batch.Dropped)
}

func TestParseQuestions_Malformed(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":           `[{"text": }]`,
		"array of strings":   `["a","b"]`,
		"object not array":   `{"text":"Q"}`,
		"empty array":        `[]`,
		"all records voided": `[{"text":"only text"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseQuestions(payload)
			assert.True(t, domain.HasCode(err, domain.CodeMalformedPayload))
		})
	}
}

func TestSerializeQuestions(t *testing.T) {
	batch, err := ParseQuestions(twoQuestions)
	require.NoError(t, err)

	out, err := SerializeQuestions(batch.Questions)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(1), decoded[1]["index"])
	assert.Equal(t, "B", decoded[1]["correctAnswer"])
	assert.Equal(t, "Chloroplasts hold chlorophyll.", decoded[1]["justification"])

	reparsed, err := ParseQuestions(out)
	require.NoError(t, err)
	assert.Equal(t, batch.Questions, reparsed.Questions)
}

func TestParseQuestions_KeysDifferingOnlyByCase(t *testing.T) {
	payload := `[{"Text":"first","text":"second","TEXT":"third","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"A"}]`

	for i := 0; i < 50; i++ {
		batch, err := ParseQuestions(payload)
		require.NoError(t, err)
		require.Len(t, batch.Questions, 1)
		assert.Equal(t, "second", batch.Questions[0].Text)
	}
}

func TestParseQuestions_KeepsValuesAsSent(t *testing.T) {
	payload := `[{"text":"  What is 2+2?\n","alternativeA":" 3","alternativeB":"4 ","alternativeC":"5","alternativeD":"6","correctAnswer":" B ","justification":" Because 2+2=4. "}]`

	batch, err := ParseQuestions(payload)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)

	q := batch.Questions[0]
	assert.Equal(t, "  What is 2+2?\n", q.Text)
	assert.Equal(t, " 3", q.AlternativeA)
	assert.Equal(t, "4 ", q.AlternativeB)
	assert.Equal(t, " Because 2+2=4. ", q.Justification)
	assert.Equal(t, domain.AlternativeB, q.CorrectAnswer)
}

func TestParseQuestions_OrdinalIndexIgnoresModelIndex(t *testing.T) {
	payload := `[
		{"index":7,"text":"Q1","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"A"},
		{"index":3,"text":"Q2","alternativeA":"a","alternativeB":"b","alternativeC":"c","alternativeD":"d","correctAnswer":"B"}
	]`

	batch, err := ParseQuestions(payload)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 2)
	assert.Equal(t, 0, batch.Questions[0].OrdinalIndex)
	assert.Equal(t, 1, batch.Questions[1].OrdinalIndex)
}
