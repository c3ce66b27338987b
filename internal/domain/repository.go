package domain

import "context"

// QuizRepository persists quizzes and their questions.
type QuizRepository interface {
	// CreateQuiz inserts the quiz row and assigns quiz.ID.
	CreateQuiz(ctx context.Context, quiz *Quiz) (string, error)

	// AppendQuestions inserts the generated questions under quizID, assigning IDs.
	AppendQuestions(ctx context.Context, quizID string, questions []GeneratedQuestion) error

	// GetQuizByID returns the quiz metadata or nil when it does not exist.
	GetQuizByID(ctx context.Context, quizID string) (*Quiz, error)

	// GetQuestionsByQuiz returns questions ordered by ordinal index.
	GetQuestionsByQuiz(ctx context.Context, quizID string) ([]GeneratedQuestion, error)
}

// UserRepository persists users and their cumulative points.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error

	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, userID string) (*User, error)

	// GetUserByEmail returns nil, nil when no user has the address.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// AddUserPoints atomically adds delta to the user's total and returns the new total.
	// It must be safe under concurrent calls for the same user.
	AddUserPoints(ctx context.Context, userID string, delta int) (int, error)
}

// TransactionManager runs fn inside a single storage transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
