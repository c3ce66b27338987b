package parser

import (
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "pure array",
			raw:  `[{"a":1}]`,
			want: `[{"a":1}]`,
		},
		{
			name: "leading and trailing commentary",
			raw:  "Sure! Here is your quiz:\n[{\"a\":1},{\"b\":[2]}]\nHope this helps.",
			want: `[{"a":1},{"b":[2]}]`,
		},
		{
			name: "markdown fence",
			raw:  "```json\n[1, 2]\n```",
			want: "[1, 2]",
		},
		{
			name: "think block with brackets is ignored",
			raw:  "<think>maybe [x] or [y]</think>\n[\"ok\"]",
			want: `["ok"]`,
		},
		{
			name: "think tags inside a string value are kept",
			raw:  `[{"text":"Which tag starts a reasoning block, <think> or </think>?"}]`,
			want: `[{"text":"Which tag starts a reasoning block, <think> or </think>?"}]`,
		},
		{
			name: "think tags after the array are not a reasoning block",
			raw:  "[\"ok\"]\n<think>late [x]</think>",
			want: "[\"ok\"]\n<think>late [x]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONArray(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONArray_NoJSONFound(t *testing.T) {
	for _, raw := range []string{"", "no json here", "] reversed [", "{\"a\":1}", "only [ open"} {
		_, err := ExtractJSONArray(raw)
		assert.True(t, domain.HasCode(err, domain.CodeNoJSONFound), "input %q", raw)
	}
}

func TestExtractJSONArray_Idempotent(t *testing.T) {
	raw := "Here you go: [{\"text\":\"Q [1]\"}] thanks"

	once, err := ExtractJSONArray(raw)
	require.NoError(t, err)
	twice, err := ExtractJSONArray(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestExtractJSONArray_IdempotentWithThinkTagsInValues(t *testing.T) {
	raw := `[{"text":"Is </think> a closing tag?","alternativeA":"<think>"}]`

	once, err := ExtractJSONArray(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, once)

	twice, err := ExtractJSONArray(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
