package service

import (
	"context"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/scoring"

	"go.uber.org/zap"
)

// ScoringService scores submitted answers and credits the user.
type ScoringService interface {
	ScoreQuiz(ctx context.Context, req *dto.ScoreRequest) (*dto.ScoreResponse, error)
}

type scoringService struct {
	users     domain.UserRepository
	questions *QuestionStore
}

// NewScoringService creates a new instance of scoringService
func NewScoringService(users domain.UserRepository, questions *QuestionStore) ScoringService {
	return &scoringService{users: users, questions: questions}
}

// ScoreQuiz awards points for correct answers. Unknown question IDs are
// ignored. The user's total is updated under a row lock so concurrent
// submissions do not lose points.
func (s *scoringService) ScoreQuiz(ctx context.Context, req *dto.ScoreRequest) (*dto.ScoreResponse, error) {
	if len(req.Answers) == 0 {
		return nil, domain.NewInvalidInputError("at least one answer is required")
	}

	user, err := s.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(req.UserID)
	}

	questions, err := s.questions.Questions(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}

	answers := make([]domain.UserAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.UserAnswer{QuestionID: a.QuestionID, ChosenAlternative: a.ChosenAlternative})
	}
	result := scoring.Score(scoring.NewAnswerKey(questions), answers, user.Points)

	total := result.NewTotal
	if result.PointsAwarded > 0 {
		total, err = s.users.AddUserPoints(ctx, req.UserID, result.PointsAwarded)
		if err != nil {
			if domain.HasCode(err, domain.CodeUserNotFound) {
				return nil, err
			}
			return nil, domain.NewInternalError("Failed to update user points", err)
		}
	}

	logger.Get().Info("Scored quiz submission",
		zap.String("user_id", req.UserID),
		zap.String("quiz_id", req.QuizID),
		zap.Int("answers", len(answers)),
		zap.Int("correct", result.Correct),
		zap.Int("ignored", result.Ignored),
		zap.Int("points_awarded", result.PointsAwarded),
		zap.Int("user_total", total))

	return &dto.ScoreResponse{
		PointsAwarded:   result.PointsAwarded,
		UserTotalPoints: total,
		CorrectAnswers:  result.Correct,
		IgnoredAnswers:  result.Ignored,
	}, nil
}
