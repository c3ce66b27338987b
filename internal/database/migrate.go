package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quiz-forge/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Direction selects which half of each migration pair is executed.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	}
	return "", fmt.Errorf("unknown migration direction %q", s)
}

// MigrationFiles lists the *.up.sql or *.down.sql files in dir. Up files are
// returned in ascending order, down files in descending order.
func MigrationFiles(dir string, direction Direction) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + string(direction) + ".sql"
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	if direction == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

// SplitStatements breaks a migration script into single statements. The Oracle
// driver executes one statement per call and rejects a trailing semicolon.
func SplitStatements(script string) []string {
	var statements []string
	for _, chunk := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// RunMigrations executes every migration file in dir for the given direction.
func RunMigrations(db *sqlx.DB, dir string, direction Direction) error {
	l := logger.Get()

	files, err := MigrationFiles(dir, direction)
	if err != nil {
		return err
	}

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		l.Info("Executed migration", zap.String("file", name), zap.String("direction", string(direction)))
	}

	l.Info("Migrations completed successfully", zap.Int("files", len(files)))
	return nil
}
