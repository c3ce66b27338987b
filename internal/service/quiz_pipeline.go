package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/parser"
	"quiz-forge/internal/prompt"

	"go.uber.org/zap"
)

// PipelineState is a step of a single generation request.
type PipelineState string

const (
	StateCreated              PipelineState = "created"
	StateGenerating           PipelineState = "generating"
	StateExtracting           PipelineState = "extracting"
	StateParsing              PipelineState = "parsing"
	StatePersisting           PipelineState = "persisting"
	StateValidating           PipelineState = "validating"
	StateExtractingValidation PipelineState = "extracting_validation"
	StateParsingValidation    PipelineState = "parsing_validation"
	StateCompleted            PipelineState = "completed"
	StateFailed               PipelineState = "failed"
)

// PipelineConfig carries the sampling parameters of both calls.
type PipelineConfig struct {
	GenerationTemperature float64
	ValidationTemperature float64
	ValidationTopP        float64
}

// DefaultPipelineConfig uses a creative generation pass and a deterministic review pass.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		GenerationTemperature: 0.7,
		ValidationTemperature: 0.0,
		ValidationTopP:        1.0,
	}
}

// PipelineResult is the outcome of a successful run. Validation is advisory:
// when the review pass fails, Validation is nil and ValidationWarning explains why.
type PipelineResult struct {
	Quiz              *domain.Quiz
	Validation        []domain.ValidationResult
	ValidationWarning string
	Dropped           []parser.DroppedRecord
	Transitions       []PipelineState
}

// QuizPipeline generates a quiz, stores it and asks the model to review it.
// It holds no per-request state and is safe for concurrent use.
type QuizPipeline struct {
	client    domain.GenerationClient
	quizRepo  domain.QuizRepository
	txManager domain.TransactionManager
	cfg       PipelineConfig
}

// NewQuizPipeline creates a QuizPipeline.
func NewQuizPipeline(client domain.GenerationClient, quizRepo domain.QuizRepository, txManager domain.TransactionManager, cfg PipelineConfig) *QuizPipeline {
	return &QuizPipeline{
		client:    client,
		quizRepo:  quizRepo,
		txManager: txManager,
		cfg:       cfg,
	}
}

// pipelineRun tracks the state of one request.
type pipelineRun struct {
	state       PipelineState
	transitions []PipelineState
	started     time.Time
	log         *zap.Logger
}

func newPipelineRun(spec domain.QuizSpec) *pipelineRun {
	r := &pipelineRun{
		started: time.Now(),
		log: logger.Get().With(
			zap.String("topic", spec.Topic),
			zap.String("difficulty", string(spec.Difficulty)),
			zap.Int("question_count", spec.QuestionCount),
		),
	}
	r.advance(StateCreated)
	return r
}

func (r *pipelineRun) advance(next PipelineState) {
	r.state = next
	r.transitions = append(r.transitions, next)
	r.log.Debug("Quiz pipeline state", zap.String("state", string(next)))
}

func (r *pipelineRun) fail(err error) error {
	failedAt := r.state
	r.advance(StateFailed)
	r.log.Error("Quiz pipeline failed",
		zap.String("failed_at", string(failedAt)),
		zap.Duration("elapsed", time.Since(r.started)),
		zap.Error(err))
	return err
}

// Run executes the whole pipeline for spec. Any failure before the quiz is
// stored aborts the request and nothing is persisted. Failures of the review
// pass are reported through PipelineResult.ValidationWarning.
func (p *QuizPipeline) Run(ctx context.Context, spec domain.QuizSpec) (*PipelineResult, error) {
	if err := checkSpec(spec); err != nil {
		return nil, err
	}

	run := newPipelineRun(spec)

	questions, dropped, err := p.generate(ctx, run, spec)
	if err != nil {
		return nil, run.fail(err)
	}

	run.advance(StatePersisting)
	quiz := domain.NewQuiz(spec)
	quiz.Questions = questions
	if err := p.persist(ctx, quiz); err != nil {
		return nil, run.fail(err)
	}

	result := &PipelineResult{Quiz: quiz, Dropped: dropped}

	validation, err := p.validate(ctx, run, spec, quiz.Questions)
	if err != nil {
		result.ValidationWarning = "validation failed: " + err.Error()
		run.log.Warn("Quiz validation failed, returning unvalidated questions",
			zap.String("quiz_id", quiz.ID),
			zap.Error(err))
	} else {
		result.Validation = validation
		logValidationSummary(run.log, quiz.ID, validation)
	}

	run.advance(StateCompleted)
	run.log.Info("Quiz pipeline completed",
		zap.String("quiz_id", quiz.ID),
		zap.Int("questions", len(quiz.Questions)),
		zap.Int("dropped", len(dropped)),
		zap.Duration("elapsed", time.Since(run.started)))

	result.Transitions = run.transitions
	return result, nil
}

func checkSpec(spec domain.QuizSpec) error {
	if strings.TrimSpace(spec.Topic) == "" {
		return domain.NewInvalidInputError("topic is required")
	}
	if strings.TrimSpace(spec.GradeLevel) == "" {
		return domain.NewInvalidInputError("grade level is required")
	}
	if spec.QuestionCount < 1 {
		return domain.NewInvalidInputError("question count must be at least 1")
	}
	if _, ok := domain.ParseDifficulty(string(spec.Difficulty)); !ok {
		return domain.NewInvalidInputError(fmt.Sprintf("unknown difficulty %q", spec.Difficulty))
	}
	return nil
}

func (p *QuizPipeline) generate(ctx context.Context, run *pipelineRun, spec domain.QuizSpec) ([]domain.GeneratedQuestion, []parser.DroppedRecord, error) {
	run.advance(StateGenerating)
	raw, err := p.client.Complete(ctx, prompt.BuildGenerationPrompt(spec),
		domain.WithSystemPrompt(prompt.GenerationSystemPrompt),
		domain.WithTemperature(p.cfg.GenerationTemperature),
	)
	if err != nil {
		return nil, nil, asLLMError(err)
	}

	run.advance(StateExtracting)
	jsonText, err := parser.ExtractJSONArray(raw)
	if err != nil {
		return nil, nil, err
	}

	run.advance(StateParsing)
	batch, err := parser.ParseQuestions(jsonText)
	if err != nil {
		return nil, nil, err
	}
	for _, d := range batch.Dropped {
		run.log.Warn("Dropped generated question with missing field",
			zap.Int("position", d.Position),
			zap.String("field", d.Field))
	}
	if n := len(batch.Questions); n != spec.QuestionCount {
		run.log.Warn("Generated question count differs from request",
			zap.Int("requested", spec.QuestionCount),
			zap.Int("generated", n))
	}

	for i := range batch.Questions {
		batch.Questions[i].Topic = spec.Topic
		batch.Questions[i].GradeLevel = spec.GradeLevel
		batch.Questions[i].Difficulty = string(spec.Difficulty)
	}
	if err := checkQuestions(batch.Questions); err != nil {
		return nil, nil, err
	}
	return batch.Questions, batch.Dropped, nil
}

// checkQuestions enforces the invariants of a storable question on the whole
// batch before anything is persisted.
func checkQuestions(questions []domain.GeneratedQuestion) error {
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return domain.NewMalformedPayloadError(err).WithContext("ordinal_index", questions[i].OrdinalIndex)
		}
	}
	return nil
}

// persist stores the quiz and its questions in one transaction.
func (p *QuizPipeline) persist(ctx context.Context, quiz *domain.Quiz) error {
	err := p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quizID, err := p.quizRepo.CreateQuiz(txCtx, quiz)
		if err != nil {
			return err
		}
		quiz.ID = quizID
		return p.quizRepo.AppendQuestions(txCtx, quizID, quiz.Questions)
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.NewInternalError("Failed to save generated quiz", err)
	}
	return nil
}

func (p *QuizPipeline) validate(ctx context.Context, run *pipelineRun, spec domain.QuizSpec, questions []domain.GeneratedQuestion) ([]domain.ValidationResult, error) {
	run.advance(StateValidating)
	serialized, err := parser.SerializeQuestions(questions)
	if err != nil {
		return nil, err
	}

	raw, err := p.client.Complete(ctx,
		prompt.BuildValidationPrompt(spec.Topic, spec.GradeLevel, spec.Difficulty, serialized),
		domain.WithSystemPrompt(prompt.ValidationSystemPrompt),
		domain.WithTemperature(p.cfg.ValidationTemperature),
		domain.WithTopP(p.cfg.ValidationTopP),
	)
	if err != nil {
		return nil, asLLMError(err)
	}

	run.advance(StateExtractingValidation)
	jsonText, err := parser.ExtractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	run.advance(StateParsingValidation)
	results, err := parser.ParseValidationResults(jsonText)
	if err != nil {
		return nil, err
	}
	return correlate(run.log, results, len(questions)), nil
}

// correlate keeps the verdicts whose index names a generated question, one per
// index, ordered by index.
func correlate(log *zap.Logger, results []domain.ValidationResult, questionCount int) []domain.ValidationResult {
	seen := make(map[int]bool, len(results))
	kept := make([]domain.ValidationResult, 0, len(results))
	for _, r := range results {
		if r.Index < 0 || r.Index >= questionCount || seen[r.Index] {
			log.Warn("Ignoring validation result with unknown or repeated index", zap.Int("index", r.Index))
			continue
		}
		seen[r.Index] = true
		kept = append(kept, r)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Index < kept[j].Index })
	return kept
}

func logValidationSummary(log *zap.Logger, quizID string, results []domain.ValidationResult) {
	invalid := 0
	for _, r := range results {
		if !r.IsValid || !r.CorrectAnswerVerified {
			invalid++
			log.Info("Reviewer flagged generated question",
				zap.String("quiz_id", quizID),
				zap.Int("index", r.Index),
				zap.Bool("valid", r.IsValid),
				zap.Bool("correct_answer_verified", r.CorrectAnswerVerified),
				zap.Strings("issues", r.Issues))
		}
	}
	log.Info("Quiz validation completed",
		zap.String("quiz_id", quizID),
		zap.Int("reviewed", len(results)),
		zap.Int("flagged", invalid))
}

func asLLMError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewLLMServiceError(err)
}
