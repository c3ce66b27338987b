package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SentinelJustification replaces a justification the model left out or blank.
const SentinelJustification = "justification not generated correctly"

// Difficulty is the canonical difficulty of a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var difficultyAliases = map[string]Difficulty{
	"easy":    DifficultyEasy,
	"facil":   DifficultyEasy,
	"medium":  DifficultyMedium,
	"media":   DifficultyMedium,
	"medio":   DifficultyMedium,
	"hard":    DifficultyHard,
	"dificil": DifficultyHard,
}

// ParseDifficulty maps a difficulty label (English or Portuguese, any case, with or
// without accents) to its canonical value.
func ParseDifficulty(label string) (Difficulty, bool) {
	d, ok := difficultyAliases[foldLabel(label)]
	return d, ok
}

func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Alternative is one of the four answer letters.
type Alternative string

const (
	AlternativeA Alternative = "A"
	AlternativeB Alternative = "B"
	AlternativeC Alternative = "C"
	AlternativeD Alternative = "D"
)

// ParseAlternative accepts "a", " B ", "C)" and similar forms.
func ParseAlternative(s string) (Alternative, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimRight(s, ").:")
	switch Alternative(s) {
	case AlternativeA, AlternativeB, AlternativeC, AlternativeD:
		return Alternative(s), true
	}
	return "", false
}

// QuizSpec is the input to a generation request.
type QuizSpec struct {
	Topic         string
	GradeLevel    string
	Difficulty    Difficulty
	QuestionCount int
}

// GeneratedQuestion is a multiple-choice question produced by the generation phase.
type GeneratedQuestion struct {
	ID            string
	QuizID        string
	OrdinalIndex  int
	Text          string
	AlternativeA  string
	AlternativeB  string
	AlternativeC  string
	AlternativeD  string
	CorrectAnswer Alternative
	Justification string
	Topic         string
	GradeLevel    string
	Difficulty    string
	CreatedAt     time.Time
}

// Validate checks the invariants every persisted question must satisfy.
func (q *GeneratedQuestion) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	for _, alt := range []string{q.AlternativeA, q.AlternativeB, q.AlternativeC, q.AlternativeD} {
		if strings.TrimSpace(alt) == "" {
			return NewInvalidInputError("all four alternatives are required")
		}
	}
	if _, ok := ParseAlternative(string(q.CorrectAnswer)); !ok {
		return NewInvalidInputError("correct answer must be one of A, B, C, D")
	}
	if strings.TrimSpace(q.Justification) == "" {
		return NewInvalidInputError("justification is required")
	}
	return nil
}

// Quiz is created once per generation request.
type Quiz struct {
	ID            string
	Topic         string
	GradeLevel    string
	Difficulty    Difficulty
	QuestionCount int
	Questions     []GeneratedQuestion
	CreatedAt     time.Time
}

// NewQuiz creates a Quiz from a submitted spec.
func NewQuiz(spec QuizSpec) *Quiz {
	return &Quiz{
		Topic:         spec.Topic,
		GradeLevel:    spec.GradeLevel,
		Difficulty:    spec.Difficulty,
		QuestionCount: spec.QuestionCount,
		CreatedAt:     time.Now(),
	}
}

// ValidationResult is the advisory verdict for one generated question.
type ValidationResult struct {
	Index                 int
	IsValid               bool
	Issues                []string
	CorrectAnswerVerified bool
}

// UserAnswer is a single submitted answer.
type UserAnswer struct {
	QuestionID        string
	ChosenAlternative string
}

// User holds the cumulative points total.
type User struct {
	ID        string
	Name      string
	Email     string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User instance
func NewUser(name, email string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return NewInvalidInputError("email is required")
	}
	return nil
}
