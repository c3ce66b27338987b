package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService_GenerateQuiz(t *testing.T) {
	f := newPipelineFixture()
	ctx := context.Background()
	f.client.On("Complete", ctx, mock.Anything, mock.MatchedBy(isGeneration)).Return(twoQuestionsResponse, nil).Once()
	f.client.On("Complete", ctx, mock.Anything, mock.MatchedBy(isValidation)).
		Return(`[{"index":0,"valid":true,"correctAnswerVerified":true},{"index":1,"valid":false,"issues":["two answers fit"]}]`, nil).Once()
	f.tx.On("WithTransaction", ctx).Return(nil)
	f.repo.On("CreateQuiz", ctx, mock.Anything).Return("QUIZ1", nil)
	f.repo.On("AppendQuestions", ctx, "QUIZ1", mock.Anything).Return(nil)

	svc := NewQuizService(f.p, NewQuestionStore(f.repo, nil, time.Hour))
	resp, err := svc.GenerateQuiz(ctx, mediumSpec(t))
	require.NoError(t, err)

	assert.Equal(t, "QUIZ1", resp.QuizID)
	assert.Equal(t, "Photosynthesis", resp.Topic)
	assert.Equal(t, "Medium", resp.Difficulty)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "A", resp.Questions[0].CorrectAnswer)
	assert.NotEmpty(t, resp.Questions[1].Justification)

	require.Len(t, resp.Validation, 2)
	assert.Equal(t, []string{}, resp.Validation[0].Issues)
	assert.False(t, resp.Validation[1].Valid)
	assert.Equal(t, []string{"two answers fit"}, resp.Validation[1].Issues)
}

func TestQuizService_GenerateQuiz_Error(t *testing.T) {
	f := newPipelineFixture()
	ctx := context.Background()
	f.client.On("Complete", ctx, mock.Anything, mock.Anything).Return("", errors.New("refused")).Once()

	svc := NewQuizService(f.p, NewQuestionStore(f.repo, nil, time.Hour))
	resp, err := svc.GenerateQuiz(ctx, mediumSpec(t))
	assert.Nil(t, resp)
	assert.True(t, domain.HasCode(err, domain.CodeLLMServiceError))
}

func TestQuizService_GetQuizQuestions_HidesAnswers(t *testing.T) {
	repo := new(MockQuizRepository)
	ctx := context.Background()
	repo.On("GetQuizByID", ctx, "QUIZ1").Return(&domain.Quiz{ID: "QUIZ1"}, nil)
	repo.On("GetQuestionsByQuiz", ctx, "QUIZ1").Return(storedQuestions(), nil)

	svc := NewQuizService(nil, NewQuestionStore(repo, nil, time.Hour))

	hidden, err := svc.GetQuizQuestions(ctx, "QUIZ1", false)
	require.NoError(t, err)
	require.Len(t, hidden.Questions, 2)
	assert.Empty(t, hidden.Questions[0].CorrectAnswer)
	assert.Empty(t, hidden.Questions[0].Justification)
	assert.Equal(t, "Oxygen", hidden.Questions[0].AlternativeA)

	shown, err := svc.GetQuizQuestions(ctx, "QUIZ1", true)
	require.NoError(t, err)
	assert.Equal(t, "C", shown.Questions[1].CorrectAnswer)
	assert.Equal(t, "j2", shown.Questions[1].Justification)
}
