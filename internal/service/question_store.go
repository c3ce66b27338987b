package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultQuestionsTTL applies when no TTL is configured.
const DefaultQuestionsTTL = 24 * time.Hour

// QuestionStore reads a quiz's questions through the cache. Stored questions
// never change after creation, so cached entries are never invalidated.
// Concurrent misses for the same quiz share one repository read.
type QuestionStore struct {
	repo  domain.QuizRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewQuestionStore creates a QuestionStore. A nil cache disables caching.
func NewQuestionStore(repo domain.QuizRepository, c domain.Cache, ttl time.Duration) *QuestionStore {
	if ttl <= 0 {
		ttl = DefaultQuestionsTTL
	}
	return &QuestionStore{repo: repo, cache: c, ttl: ttl}
}

// Questions returns the questions of quizID ordered by ordinal index. It fails
// with CodeQuizNotFound for an unknown quiz and CodeNotFound when the quiz has
// no questions.
func (s *QuestionStore) Questions(ctx context.Context, quizID string) ([]domain.GeneratedQuestion, error) {
	cacheKey := cache.QuestionsKey(quizID)
	if questions, ok := s.fromCache(ctx, cacheKey); ok {
		return questions, nil
	}

	v, err, shared := s.group.Do(quizID, func() (interface{}, error) {
		return s.load(ctx, quizID, cacheKey)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("QuestionStore: shared repository read", zap.String("quiz_id", quizID))
	}
	return v.([]domain.GeneratedQuestion), nil
}

func (s *QuestionStore) fromCache(ctx context.Context, key string) ([]domain.GeneratedQuestion, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("QuestionStore: cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var questions []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(data), &questions); err != nil || len(questions) == 0 {
		logger.Get().Warn("QuestionStore: discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return questions, true
}

func (s *QuestionStore) load(ctx context.Context, quizID, cacheKey string) ([]domain.GeneratedQuestion, error) {
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.repo.GetQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("Quiz has no questions").WithContext("quiz_id", quizID)
	}

	if s.cache != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), s.ttl); err != nil {
				logger.Get().Warn("QuestionStore: cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return questions, nil
}
