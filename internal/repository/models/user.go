package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID        string         `db:"ID"` // ULID
	Name      sql.NullString `db:"NAME"`
	Email     string         `db:"EMAIL"`
	Points    int            `db:"POINTS"`
	CreatedAt time.Time      `db:"CREATED_AT"`
	UpdatedAt time.Time      `db:"UPDATED_AT"`
}
