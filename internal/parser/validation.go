package parser

import (
	"encoding/json"

	"quiz-forge/internal/domain"
)

type wireValidation struct {
	Index                 int      `json:"index"`
	Valid                 *bool    `json:"valid"`
	IsValid               *bool    `json:"isValid"`
	Issues                []string `json:"issues"`
	CorrectAnswerVerified bool     `json:"correctAnswerVerified"`
}

// ParseValidationResults deserializes the reviewer's JSON array. Nothing is
// repaired: a missing flag reads as false and missing issues as an empty list.
func ParseValidationResults(jsonText string) ([]domain.ValidationResult, error) {
	var wire []wireValidation
	if err := json.Unmarshal([]byte(jsonText), &wire); err != nil {
		return nil, domain.NewMalformedPayloadError(err)
	}

	results := make([]domain.ValidationResult, 0, len(wire))
	for _, w := range wire {
		valid := false
		switch {
		case w.Valid != nil:
			valid = *w.Valid
		case w.IsValid != nil:
			valid = *w.IsValid
		}
		issues := w.Issues
		if issues == nil {
			issues = []string{}
		}
		results = append(results, domain.ValidationResult{
			Index:                 w.Index,
			IsValid:               valid,
			Issues:                issues,
			CorrectAnswerVerified: w.CorrectAnswerVerified,
		})
	}
	return results, nil
}
