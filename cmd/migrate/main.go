package main

import (
	"log"

	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	dir := pflag.StringP("dir", "d", "database/migrations", "directory holding the *.up.sql and *.down.sql files")
	direction := pflag.String("direction", "up", "migration direction: up or down")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	dirn, err := database.ParseDirection(*direction)
	if err != nil {
		l.Fatal("Invalid direction", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, *dir, dirn); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("dir", *dir), zap.String("direction", string(dirn)))
}
