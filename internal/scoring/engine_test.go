package scoring

import (
	"math/rand"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		difficulty string
		want       int
	}{
		{"Easy", 15},
		{"Fácil", 15},
		{"Medium", 20},
		{"Média", 20},
		{"Hard", 30},
		{"Dificil", 30},
		{"Difícil", 30},
		{"Impossible", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsFor(tt.difficulty))
		})
	}
}

func TestScore_CorrectMatchPerDifficulty(t *testing.T) {
	for difficulty, want := range map[string]int{"Easy": 15, "Média": 20, "Dificil": 30, "Legendary": 0} {
		key := AnswerKey{"q1": {CorrectAnswer: domain.AlternativeB, Difficulty: difficulty}}
		res := Score(key, []domain.UserAnswer{{QuestionID: "q1", ChosenAlternative: "B"}}, 0)
		assert.Equal(t, want, res.PointsAwarded, difficulty)
		assert.Equal(t, want, res.NewTotal, difficulty)
	}
}

func TestScore_OneCorrectOneIncorrect(t *testing.T) {
	key := AnswerKey{
		"q1": {CorrectAnswer: domain.AlternativeA, Difficulty: "Média"},
		"q2": {CorrectAnswer: domain.AlternativeC, Difficulty: "Média"},
	}
	answers := []domain.UserAnswer{
		{QuestionID: "q1", ChosenAlternative: "A"},
		{QuestionID: "q2", ChosenAlternative: "D"},
	}

	res := Score(key, answers, 0)

	assert.Equal(t, 20, res.PointsAwarded)
	assert.Equal(t, 20, res.NewTotal)
	assert.Equal(t, 1, res.Correct)
}

func TestScore_UnknownQuestionIgnored(t *testing.T) {
	key := AnswerKey{"q1": {CorrectAnswer: domain.AlternativeA, Difficulty: "Hard"}}
	answers := []domain.UserAnswer{{QuestionID: "stale", ChosenAlternative: "A"}}

	res := Score(key, answers, 45)

	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, 45, res.NewTotal)
	assert.Equal(t, 1, res.Ignored)
}

func TestScore_ChosenAlternativeIsNormalized(t *testing.T) {
	key := AnswerKey{"q1": {CorrectAnswer: domain.AlternativeD, Difficulty: "Easy"}}
	res := Score(key, []domain.UserAnswer{{QuestionID: "q1", ChosenAlternative: " d "}}, 0)
	assert.Equal(t, 15, res.PointsAwarded)
}

func TestScore_OrderIndependent(t *testing.T) {
	key := AnswerKey{
		"q1": {CorrectAnswer: domain.AlternativeA, Difficulty: "Easy"},
		"q2": {CorrectAnswer: domain.AlternativeB, Difficulty: "Medium"},
		"q3": {CorrectAnswer: domain.AlternativeC, Difficulty: "Hard"},
		"q4": {CorrectAnswer: domain.AlternativeD, Difficulty: "Hard"},
	}
	answers := []domain.UserAnswer{
		{QuestionID: "q1", ChosenAlternative: "A"},
		{QuestionID: "q2", ChosenAlternative: "B"},
		{QuestionID: "q3", ChosenAlternative: "A"},
		{QuestionID: "q4", ChosenAlternative: "D"},
		{QuestionID: "ghost", ChosenAlternative: "D"},
	}
	want := Score(key, answers, 10)
	assert.Equal(t, 65, want.PointsAwarded)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.UserAnswer(nil), answers...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Score(key, shuffled, 10))
	}
}

func TestNewAnswerKey(t *testing.T) {
	key := NewAnswerKey([]domain.GeneratedQuestion{
		{ID: "q1", CorrectAnswer: domain.AlternativeA, Difficulty: "Easy"},
		{ID: "q2", CorrectAnswer: domain.AlternativeB, Difficulty: "Hard"},
	})
	assert.Len(t, key, 2)
	assert.Equal(t, QuestionKey{CorrectAnswer: domain.AlternativeB, Difficulty: "Hard"}, key["q2"])
}
