// Package parser turns free-form generation output into structured records.
package parser

import (
	"strings"

	"quiz-forge/internal/domain"
)

const (
	thinkOpenTag  = "<think>"
	thinkCloseTag = "</think>"
)

// ExtractJSONArray returns the substring spanning the first '[' and the last ']'
// of raw. Commentary the model writes around the array is discarded, as is a
// leading <think>...</think> reasoning block. When no such span exists the error
// carries domain.CodeNoJSONFound.
func ExtractJSONArray(raw string) (string, error) {
	cleaned := stripThinkBlock(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return "", domain.NewNoJSONFoundError(nil).WithContext("response_length", len(raw))
	}
	return cleaned[start : end+1], nil
}

// stripThinkBlock removes a reasoning block only when the response opens with
// one. Tags appearing later, such as inside JSON string values, are kept.
func stripThinkBlock(s string) string {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	if !strings.HasPrefix(trimmed, thinkOpenTag) {
		return s
	}
	thinkEnd := strings.Index(trimmed, thinkCloseTag)
	if thinkEnd == -1 {
		return s
	}
	return trimmed[thinkEnd+len(thinkCloseTag):]
}
