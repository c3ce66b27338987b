// Package scoring awards points for submitted multiple-choice answers.
package scoring

import "quiz-forge/internal/domain"

var pointsByDifficulty = map[domain.Difficulty]int{
	domain.DifficultyEasy:   15,
	domain.DifficultyMedium: 20,
	domain.DifficultyHard:   30,
}

// PointsFor returns the points a correct answer earns at the given difficulty
// label. Unrecognized labels earn 0.
func PointsFor(difficulty string) int {
	d, ok := domain.ParseDifficulty(difficulty)
	if !ok {
		return 0
	}
	return pointsByDifficulty[d]
}

// QuestionKey is the canonical answer for one question.
type QuestionKey struct {
	CorrectAnswer domain.Alternative
	Difficulty    string
}

// AnswerKey maps question ID to its canonical answer.
type AnswerKey map[string]QuestionKey

// NewAnswerKey builds an AnswerKey from persisted questions.
func NewAnswerKey(questions []domain.GeneratedQuestion) AnswerKey {
	key := make(AnswerKey, len(questions))
	for _, q := range questions {
		key[q.ID] = QuestionKey{CorrectAnswer: q.CorrectAnswer, Difficulty: q.Difficulty}
	}
	return key
}

// Result is the outcome of scoring one submission.
type Result struct {
	PointsAwarded int
	NewTotal      int
	Correct       int
	Ignored       int
}

// Score compares each answer with the key. Answers for unknown question IDs are
// ignored. Every answer is scored on its own, so the total does not depend on
// the order of answers.
func Score(key AnswerKey, answers []domain.UserAnswer, previousTotal int) Result {
	var res Result
	for _, a := range answers {
		q, ok := key[a.QuestionID]
		if !ok {
			res.Ignored++
			continue
		}
		chosen, ok := domain.ParseAlternative(a.ChosenAlternative)
		if !ok || chosen != q.CorrectAnswer {
			continue
		}
		res.Correct++
		res.PointsAwarded += PointsFor(q.Difficulty)
	}
	res.NewTotal = previousTotal + res.PointsAwarded
	return res
}
