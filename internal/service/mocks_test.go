package service

import (
	"context"
	"time"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockGenerationClient ---
type MockGenerationClient struct {
	mock.Mock
}

// Complete folds opts so expectations can match on the effective options.
func (m *MockGenerationClient) Complete(ctx context.Context, prompt string, opts ...domain.CompletionOption) (string, error) {
	args := m.Called(ctx, prompt, domain.ApplyCompletionOptions(opts...))
	return args.String(0), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (string, error) {
	args := m.Called(ctx, quiz)
	return args.String(0), args.Error(1)
}

// AppendQuestions assigns IDs like the real repository does.
func (m *MockQuizRepository) AppendQuestions(ctx context.Context, quizID string, questions []domain.GeneratedQuestion) error {
	args := m.Called(ctx, quizID, questions)
	if args.Error(0) == nil {
		for i := range questions {
			questions[i].ID = quizID + "-Q" + string(rune('0'+i))
			questions[i].QuizID = quizID
		}
	}
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuestionsByQuiz(ctx context.Context, quizID string) ([]domain.GeneratedQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedQuestion), args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AddUserPoints(ctx context.Context, userID string, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

// --- MockTransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

// WithTransaction runs fn directly and reports its error.
func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
