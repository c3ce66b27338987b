package parser

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"quiz-forge/internal/domain"
)

// fieldPolicy says what happens when a question field is missing or blank.
type fieldPolicy int

const (
	// rejectRecord drops the question from the batch.
	rejectRecord fieldPolicy = iota
	// useSentinel substitutes domain.SentinelJustification.
	useSentinel
)

type questionField struct {
	name    string
	aliases []string
	policy  fieldPolicy
	assign  func(q *domain.GeneratedQuestion, v string) bool
}

// questionFields is the per-field repair policy. Only the justification is ever
// repaired; every other field voids the record when it is absent.
var questionFields = []questionField{
	{
		name:    "text",
		aliases: []string{"text", "question", "questiontext", "perguntatexto", "pergunta"},
		policy:  rejectRecord,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.Text = v; return true },
	},
	{
		name:    "alternativeA",
		aliases: []string{"alternativea", "alternativaa", "optiona", "a"},
		policy:  rejectRecord,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.AlternativeA = v; return true },
	},
	{
		name:    "alternativeB",
		aliases: []string{"alternativeb", "alternativab", "optionb", "b"},
		policy:  rejectRecord,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.AlternativeB = v; return true },
	},
	{
		name:    "alternativeC",
		aliases: []string{"alternativec", "alternativac", "optionc", "c"},
		policy:  rejectRecord,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.AlternativeC = v; return true },
	},
	{
		name:    "alternativeD",
		aliases: []string{"alternatived", "alternativad", "optiond", "d"},
		policy:  rejectRecord,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.AlternativeD = v; return true },
	},
	{
		name:    "correctAnswer",
		aliases: []string{"correctanswer", "answer", "respostacorreta"},
		policy:  rejectRecord,
		assign: func(q *domain.GeneratedQuestion, v string) bool {
			alt, ok := domain.ParseAlternative(v)
			q.CorrectAnswer = alt
			return ok
		},
	},
	{
		name:    "justification",
		aliases: []string{"justification", "justificativa", "explanation"},
		policy:  useSentinel,
		assign:  func(q *domain.GeneratedQuestion, v string) bool { q.Justification = v; return true },
	},
}

// DroppedRecord describes a question removed from the batch.
type DroppedRecord struct {
	Position int
	Field    string
}

// QuestionBatch is the outcome of parsing a generation response.
type QuestionBatch struct {
	Questions []domain.GeneratedQuestion
	Dropped   []DroppedRecord
}

// ParseQuestions deserializes a JSON array of question objects. Keys are matched
// case-insensitively and in English or Portuguese. A blank or missing
// justification is replaced by the sentinel; a record missing any other field is
// dropped. OrdinalIndex is the position among the kept records.
//
// The error carries domain.CodeMalformedPayload when the text is not an array of
// objects or when no record survives.
func ParseQuestions(jsonText string) (*QuestionBatch, error) {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &records); err != nil {
		return nil, domain.NewMalformedPayloadError(err)
	}

	batch := &QuestionBatch{Questions: make([]domain.GeneratedQuestion, 0, len(records))}
	for pos, record := range records {
		fields := foldKeys(record)
		q := domain.GeneratedQuestion{OrdinalIndex: len(batch.Questions)}

		rejectedField := ""
		for _, f := range questionFields {
			v, found := lookupString(fields, f.aliases)
			if found && f.assign(&q, v) {
				continue
			}
			if f.policy == useSentinel {
				q.Justification = domain.SentinelJustification
				continue
			}
			rejectedField = f.name
			break
		}

		if rejectedField != "" {
			batch.Dropped = append(batch.Dropped, DroppedRecord{Position: pos, Field: rejectedField})
			continue
		}
		batch.Questions = append(batch.Questions, q)
	}

	if len(batch.Questions) == 0 {
		return batch, domain.NewMalformedPayloadError(
			fmt.Errorf("no usable questions in %d records", len(records)),
		)
	}
	return batch, nil
}

// foldKeys lowercases keys. When keys collide, an all-lowercase key wins,
// otherwise the first key in sorted order does.
func foldKeys(record map[string]json.RawMessage) map[string]json.RawMessage {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	folded := make(map[string]json.RawMessage, len(record))
	for _, k := range keys {
		fk := strings.ToLower(strings.TrimSpace(k))
		if _, taken := folded[fk]; taken && k != fk {
			continue
		}
		folded[fk] = record[k]
	}
	return folded
}

// lookupString returns the first alias holding a non-blank JSON string. The
// value is returned as sent.
func lookupString(fields map[string]json.RawMessage, aliases []string) (string, bool) {
	for _, alias := range aliases {
		raw, ok := fields[alias]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// wireQuestion is the JSON shape used in prompts.
type wireQuestion struct {
	Index         int    `json:"index"`
	Text          string `json:"text"`
	AlternativeA  string `json:"alternativeA"`
	AlternativeB  string `json:"alternativeB"`
	AlternativeC  string `json:"alternativeC"`
	AlternativeD  string `json:"alternativeD"`
	CorrectAnswer string `json:"correctAnswer"`
	Justification string `json:"justification"`
}

// SerializeQuestions renders questions in the same schema the generation prompt
// asks for, so the reviewer sees each question's ordinal index.
func SerializeQuestions(questions []domain.GeneratedQuestion) (string, error) {
	wire := make([]wireQuestion, 0, len(questions))
	for _, q := range questions {
		wire = append(wire, wireQuestion{
			Index:         q.OrdinalIndex,
			Text:          q.Text,
			AlternativeA:  q.AlternativeA,
			AlternativeB:  q.AlternativeB,
			AlternativeC:  q.AlternativeC,
			AlternativeD:  q.AlternativeD,
			CorrectAnswer: string(q.CorrectAnswer),
			Justification: q.Justification,
		})
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to serialize questions: %w", err)
	}
	return string(data), nil
}
