package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quiz-forge/cmd/seed_initial_data/internal/seedmodels"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/users.json"

func main() {
	seedFilePath := pflag.StringP("file", "f", defaultSeedFilePath, "JSON file with the users to register")
	pflag.Parse()

	ctx := context.Background()
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

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedUsers []seedmodels.SeedUser
	if err := json.Unmarshal(byteValue, &seedUsers); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("users_loaded", len(seedUsers)))

	userService := service.NewUserService(repository.NewSQLXUserRepository(db))

	var created, existing, failed int
	for _, su := range seedUsers {
		user, isNew, err := userService.RegisterUser(ctx, su.Name, su.Email)
		if err != nil {
			failed++
			log.Error("Failed to register user", zap.String("email", su.Email), zap.Error(err))
			continue
		}
		if isNew {
			created++
			log.Info("Created user", zap.String("id", user.ID), zap.String("email", user.Email))
		} else {
			existing++
			log.Info("User exists", zap.String("id", user.ID), zap.String("email", user.Email))
		}
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("created", created),
		zap.Int("existing", existing),
		zap.Int("failed", failed))
}
