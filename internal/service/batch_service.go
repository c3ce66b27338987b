package service

import (
	"context"
	"sync"
	"time"

	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the number of pipelines running at once.
const DefaultBatchConcurrency = 2

// BatchOutcome records what happened to one spec of a batch.
type BatchOutcome struct {
	Spec              domain.QuizSpec
	QuizID            string
	QuestionCount     int
	ValidationWarning string
	Err               error
}

// BatchReport summarizes a batch run. Outcomes keep the input order.
type BatchReport struct {
	Outcomes  []BatchOutcome
	Succeeded int
	Failed    int
}

// BatchService generates many quizzes in one run.
type BatchService interface {
	GenerateBatch(ctx context.Context, specs []domain.QuizSpec) (*BatchReport, error)
}

type batchService struct {
	quizService QuizService
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(quizService QuizService, concurrency int, logger *zap.Logger) BatchService {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	return &batchService{
		quizService: quizService,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GenerateBatch runs the generation pipeline for every spec. A failed spec is
// recorded in its outcome and does not stop the others; only a cancelled
// context aborts the batch.
func (s *batchService) GenerateBatch(ctx context.Context, specs []domain.QuizSpec) (*BatchReport, error) {
	s.logger.Info("Starting batch quiz generation", zap.Int("specs", len(specs)), zap.Int("concurrency", s.concurrency))
	start := time.Now()

	report := &BatchReport{Outcomes: make([]BatchOutcome, len(specs))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome := BatchOutcome{Spec: spec}
			resp, err := s.quizService.GenerateQuiz(gctx, spec)
			if err != nil {
				outcome.Err = err
				s.logger.Error("Quiz generation failed",
					zap.String("topic", spec.Topic),
					zap.String("grade_level", spec.GradeLevel),
					zap.Error(err))
			} else {
				outcome.QuizID = resp.QuizID
				outcome.QuestionCount = len(resp.Questions)
				outcome.ValidationWarning = resp.ValidationWarning
				s.logger.Info("Quiz generated",
					zap.String("quiz_id", resp.QuizID),
					zap.String("topic", spec.Topic),
					zap.Int("questions", outcome.QuestionCount))
			}

			mu.Lock()
			report.Outcomes[i] = outcome
			if outcome.Err != nil {
				report.Failed++
			} else {
				report.Succeeded++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	s.logger.Info("Batch quiz generation finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", time.Since(start)))
	return report, nil
}
