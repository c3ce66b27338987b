package parser

import (
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidationResults(t *testing.T) {
	payload := `[
		{"index":0,"valid":true,"issues":[],"correctAnswerVerified":true},
		{"Index":1,"Valid":false,"Issues":["ambiguous","typo in B"],"CorrectAnswerVerified":false}
	]`

	results, err := ParseValidationResults(payload)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, domain.ValidationResult{Index: 0, IsValid: true, Issues: []string{}, CorrectAnswerVerified: true}, results[0])
	assert.Equal(t, 1, results[1].Index)
	assert.False(t, results[1].IsValid)
	assert.Equal(t, []string{"ambiguous", "typo in B"}, results[1].Issues)
}

func TestParseValidationResults_MissingFieldsDefault(t *testing.T) {
	results, err := ParseValidationResults(`[{"index":3}]`)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 3, results[0].Index)
	assert.False(t, results[0].IsValid)
	assert.False(t, results[0].CorrectAnswerVerified)
	assert.NotNil(t, results[0].Issues)
	assert.Empty(t, results[0].Issues)
}

func TestParseValidationResults_IsValidAlias(t *testing.T) {
	results, err := ParseValidationResults(`[{"index":0,"isValid":true}]`)
	require.NoError(t, err)
	assert.True(t, results[0].IsValid)
}

func TestParseValidationResults_Malformed(t *testing.T) {
	_, err := ParseValidationResults(`[{"index":"zero"}]`)
	assert.True(t, domain.HasCode(err, domain.CodeMalformedPayload))

	_, err = ParseValidationResults(`not json`)
	assert.True(t, domain.HasCode(err, domain.CodeMalformedPayload))
}
