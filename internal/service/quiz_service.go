package service

import (
	"context"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, spec domain.QuizSpec) (*dto.GenerateQuizResponse, error)
	GetQuizQuestions(ctx context.Context, quizID string, includeAnswers bool) (*dto.QuestionsResponse, error)
}

type quizService struct {
	pipeline  *QuizPipeline
	questions *QuestionStore
}

// NewQuizService creates a new instance of quizService
func NewQuizService(pipeline *QuizPipeline, questions *QuestionStore) QuizService {
	return &quizService{pipeline: pipeline, questions: questions}
}

func (s *quizService) GenerateQuiz(ctx context.Context, spec domain.QuizSpec) (*dto.GenerateQuizResponse, error) {
	result, err := s.pipeline.Run(ctx, spec)
	if err != nil {
		return nil, err
	}

	quiz := result.Quiz
	resp := &dto.GenerateQuizResponse{
		QuizID:            quiz.ID,
		Topic:             quiz.Topic,
		GradeLevel:        quiz.GradeLevel,
		Difficulty:        string(quiz.Difficulty),
		Questions:         toQuestionResponses(quiz.Questions, true),
		ValidationWarning: result.ValidationWarning,
	}
	for _, v := range result.Validation {
		issues := v.Issues
		if issues == nil {
			issues = []string{}
		}
		resp.Validation = append(resp.Validation, dto.ValidationResultResponse{
			Index:                 v.Index,
			Valid:                 v.IsValid,
			Issues:                issues,
			CorrectAnswerVerified: v.CorrectAnswerVerified,
		})
	}
	return resp, nil
}

// GetQuizQuestions hides correct answers and justifications unless includeAnswers is set.
func (s *quizService) GetQuizQuestions(ctx context.Context, quizID string, includeAnswers bool) (*dto.QuestionsResponse, error) {
	questions, err := s.questions.Questions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionsResponse{
		QuizID:    quizID,
		Questions: toQuestionResponses(questions, includeAnswers),
	}, nil
}

func toQuestionResponses(questions []domain.GeneratedQuestion, includeAnswers bool) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		r := dto.QuestionResponse{
			ID:           q.ID,
			OrdinalIndex: q.OrdinalIndex,
			Text:         q.Text,
			AlternativeA: q.AlternativeA,
			AlternativeB: q.AlternativeB,
			AlternativeC: q.AlternativeC,
			AlternativeD: q.AlternativeD,
			Difficulty:   q.Difficulty,
		}
		if includeAnswers {
			r.CorrectAnswer = string(q.CorrectAnswer)
			r.Justification = q.Justification
		}
		out = append(out, r)
	}
	return out
}
