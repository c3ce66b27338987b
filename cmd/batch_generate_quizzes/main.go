package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quiz-forge/internal/adapter"
	"quiz-forge/internal/adapter/llm"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	specFile := pflag.StringP("file", "f", "configs/seed_data/batch_quizzes.json", "JSON array of quiz generation requests")
	concurrency := pflag.IntP("concurrency", "c", service.DefaultBatchConcurrency, "number of quizzes generated at once")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Batch process starting up...")

	raw, err := os.ReadFile(*specFile)
	if err != nil {
		log.Fatal("Failed to read batch file", zap.String("path", *specFile), zap.Error(err))
	}
	var requests []dto.GenerateQuizRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		log.Fatal("Failed to unmarshal batch file", zap.Error(err))
	}

	validator := validation.NewValidator(cfg.Quiz.MaxQuestionCount)
	specs := make([]domain.QuizSpec, 0, len(requests))
	for i := range requests {
		spec, errs := validator.ValidateGenerateRequest(&requests[i])
		if len(errs) > 0 {
			log.Warn("Skipping invalid request", zap.Int("position", i), zap.Error(errs))
			continue
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		log.Info("Nothing to generate. Batch process finishing early.")
		return
	}

	llmClient, err := llm.NewFromConfig(cfg.LLM)
	if err != nil {
		log.Fatal("Failed to create LLM client", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize Redis Client", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		log.Warn("Redis cache is not configured. Running without cache.")
	}

	quizRepo := repository.NewSQLXQuizRepository(db)
	pipeline := service.NewQuizPipeline(llmClient, quizRepo, repository.NewTransactionManagerAdapter(db), service.PipelineConfig{
		GenerationTemperature: cfg.LLM.GenerationTemperature,
		ValidationTemperature: cfg.LLM.ValidationTemperature,
		ValidationTopP:        cfg.LLM.ValidationTopP,
	})
	questionStore := service.NewQuestionStore(quizRepo, cacheAdapter,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Questions, service.DefaultQuestionsTTL))
	batchSvc := service.NewBatchService(service.NewQuizService(pipeline, questionStore), *concurrency, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := batchSvc.GenerateBatch(ctx, specs)
	if err != nil {
		log.Fatal("Batch process aborted", zap.Error(err))
	}
	for _, o := range report.Outcomes {
		if o.Err != nil {
			log.Warn("Failed spec", zap.String("topic", o.Spec.Topic), zap.Error(o.Err))
		}
	}
	log.Info("Batch process completed.", zap.Int("succeeded", report.Succeeded), zap.Int("failed", report.Failed))
}
