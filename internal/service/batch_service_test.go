package service

import (
	"context"
	"errors"
	"testing"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, spec domain.QuizSpec) (*dto.GenerateQuizResponse, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateQuizResponse), args.Error(1)
}

func (m *MockQuizService) GetQuizQuestions(ctx context.Context, quizID string, includeAnswers bool) (*dto.QuestionsResponse, error) {
	args := m.Called(ctx, quizID, includeAnswers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionsResponse), args.Error(1)
}

func TestBatchService_GenerateBatch(t *testing.T) {
	ctx := context.Background()
	photosynthesis := domain.QuizSpec{Topic: "Photosynthesis", GradeLevel: "Grade 6", Difficulty: domain.DifficultyMedium, QuestionCount: 2}
	fractions := domain.QuizSpec{Topic: "Fractions", GradeLevel: "Grade 4", Difficulty: domain.DifficultyEasy, QuestionCount: 3}
	volcanoes := domain.QuizSpec{Topic: "Volcanoes", GradeLevel: "Grade 8", Difficulty: domain.DifficultyHard, QuestionCount: 1}

	quizSvc := new(MockQuizService)
	quizSvc.On("GenerateQuiz", mock.Anything, photosynthesis).
		Return(&dto.GenerateQuizResponse{QuizID: "quiz-1", Questions: make([]dto.QuestionResponse, 2)}, nil).Once()
	quizSvc.On("GenerateQuiz", mock.Anything, fractions).
		Return(nil, domain.NewNoJSONFoundError(nil)).Once()
	quizSvc.On("GenerateQuiz", mock.Anything, volcanoes).
		Return(&dto.GenerateQuizResponse{QuizID: "quiz-3", Questions: make([]dto.QuestionResponse, 1), ValidationWarning: "validation unavailable"}, nil).Once()

	svc := NewBatchService(quizSvc, 2, zap.NewNop())
	report, err := svc.GenerateBatch(ctx, []domain.QuizSpec{photosynthesis, fractions, volcanoes})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 3)

	assert.Equal(t, "quiz-1", report.Outcomes[0].QuizID)
	assert.Equal(t, 2, report.Outcomes[0].QuestionCount)
	assert.True(t, domain.HasCode(report.Outcomes[1].Err, domain.CodeNoJSONFound))
	assert.Empty(t, report.Outcomes[1].QuizID)
	assert.Equal(t, "validation unavailable", report.Outcomes[2].ValidationWarning)
	quizSvc.AssertExpectations(t)
}

func TestBatchService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	quizSvc := new(MockQuizService)
	svc := NewBatchService(quizSvc, 0, zap.NewNop())

	_, err := svc.GenerateBatch(ctx, []domain.QuizSpec{{Topic: "t", GradeLevel: "g", Difficulty: domain.DifficultyEasy, QuestionCount: 1}})
	assert.True(t, errors.Is(err, context.Canceled))
	quizSvc.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything)
}
