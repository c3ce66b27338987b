package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
	"quiz-forge/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

const userColumns = `id, name, email, points, created_at, updated_at`

func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	m := fromDomainUser(user)
	query := `INSERT INTO users (` + userColumns + `) VALUES (:1, :2, :3, :4, :5, :6)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Points, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = :1`, userID)
}

func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = :1`, email)
}

func (r *sqlxUserRepository) getUser(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m models.User
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&m), nil
}

// AddUserPoints locks the user row, adds delta and returns the new total.
// Outside a transaction it opens its own so the lock covers the update.
func (r *sqlxUserRepository) AddUserPoints(ctx context.Context, userID string, delta int) (int, error) {
	if !InTransaction(ctx) {
		var total int
		err := runInTx(ctx, r.db, func(txCtx context.Context) error {
			var err error
			total, err = r.addUserPoints(txCtx, userID, delta)
			return err
		})
		return total, err
	}
	return r.addUserPoints(ctx, userID, delta)
}

func (r *sqlxUserRepository) addUserPoints(ctx context.Context, userID string, delta int) (int, error) {
	exec := GetExecutor(ctx, r.db)

	var current int
	err := exec.GetContext(ctx, &current, `SELECT points FROM users WHERE id = :1 FOR UPDATE`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NewUserNotFoundError(userID)
		}
		return 0, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}

	total := current + delta
	_, err = exec.ExecContext(ctx, `UPDATE users SET points = :1, updated_at = :2 WHERE id = :3`, total, time.Now(), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update points for user %s: %w", userID, err)
	}
	return total, nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Name:      util.NullStringToString(m.Name),
		Email:     m.Email,
		Points:    m.Points,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.ID,
		Name:      util.StringToNullString(u.Name),
		Email:     u.Email,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
