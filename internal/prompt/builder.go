// Package prompt builds the instruction text sent to the generation service.
package prompt

import (
	"fmt"

	"quiz-forge/internal/domain"
)

// GenerationSystemPrompt frames the generation call.
const GenerationSystemPrompt = "You are a quiz generator. Make sure every question and answer fits the requested topic and the student's grade level. " +
	"Respond only with JSON, with no characters or words before or after it."

// ValidationSystemPrompt frames the validation call.
const ValidationSystemPrompt = "You are a pedagogical and linguistic reviewer. " +
	"Respond only with JSON, with no characters or words before or after it."

const generationTemplate = `You are a teacher for "%s".
Create %d multiple-choice questions about "%s" with difficulty "%s".
Each question must contain:
- text
- alternatives alternativeA, alternativeB, alternativeC, alternativeD
- correctAnswer (A|B|C|D)
- justification briefly explaining why the correct alternative is right, tied to the content of the question.

Respond ONLY with a STRICT JSON array, with no prose before or after it, in this format:

[
  {
    "text": "string",
    "alternativeA": "string",
    "alternativeB": "string",
    "alternativeC": "string",
    "alternativeD": "string",
    "correctAnswer": "A|B|C|D",
    "justification": "string"
  }
]
`

const validationTemplate = `You are a pedagogical reviewer. Validate the questions below.
Rules:
1) Check that every field exists (text, alternativeA..alternativeD, correctAnswer, justification).
2) Confirm that correctAnswer points at the indicated alternative and that it is in fact correct.
3) Check for ambiguity (more than one possible answer).
4) Check fitness for topic "%s", grade level "%s", difficulty "%s".
5) Check grammar and spelling.
6) Respond ONLY with a STRICT JSON array, with no prose before or after it, one element per question, in this format:

[
  {
    "index": 0,
    "valid": true,
    "issues": ["string"],
    "correctAnswerVerified": true
  }
]

"index" must be the index of the question being reviewed.

Here is the JSON of the questions:
%s
`

// BuildGenerationPrompt returns the prompt asking for spec.QuestionCount questions.
func BuildGenerationPrompt(spec domain.QuizSpec) string {
	return fmt.Sprintf(generationTemplate, spec.GradeLevel, spec.QuestionCount, spec.Topic, spec.Difficulty)
}

// BuildValidationPrompt returns the prompt asking the reviewer to check questionsJSON.
func BuildValidationPrompt(topic, gradeLevel string, difficulty domain.Difficulty, questionsJSON string) string {
	return fmt.Sprintf(validationTemplate, topic, gradeLevel, difficulty, questionsJSON)
}
