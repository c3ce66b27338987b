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

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (string, error) {
	if quiz == nil {
		return "", fmt.Errorf("cannot save nil quiz")
	}
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}

	query := `INSERT INTO quizzes (id, topic, grade_level, difficulty, question_count, created_at)
	VALUES (:1, :2, :3, :4, :5, :6)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		quiz.ID,
		quiz.Topic,
		quiz.GradeLevel,
		string(quiz.Difficulty),
		quiz.QuestionCount,
		quiz.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save quiz: %w", err)
	}
	return quiz.ID, nil
}

// AppendQuestions writes the IDs and quiz ID it assigns back into questions.
func (r *sqlxQuizRepository) AppendQuestions(ctx context.Context, quizID string, questions []domain.GeneratedQuestion) error {
	if quizID == "" {
		return fmt.Errorf("quiz ID is required to append questions")
	}

	query := `INSERT INTO quiz_questions (
		id, quiz_id, ordinal_index, text,
		alternative_a, alternative_b, alternative_c, alternative_d,
		correct_answer, justification, topic, grade_level, difficulty, created_at
	) VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14)`

	exec := GetExecutor(ctx, r.db)
	now := time.Now()
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		q.QuizID = quizID
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}

		m := toModelQuestion(q)
		_, err := exec.ExecContext(ctx, query,
			m.ID, m.QuizID, m.OrdinalIndex, m.Text,
			m.AlternativeA, m.AlternativeB, m.AlternativeC, m.AlternativeD,
			m.CorrectAnswer, m.Justification, m.Topic, m.GradeLevel, m.Difficulty, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save question %d of quiz %s: %w", q.OrdinalIndex, quizID, err)
		}
	}
	return nil
}

func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	var m models.Quiz
	query := `SELECT id, topic, grade_level, difficulty, question_count, created_at
	FROM quizzes
	WHERE id = :1`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", quizID, err)
	}
	return toDomainQuiz(&m), nil
}

func (r *sqlxQuizRepository) GetQuestionsByQuiz(ctx context.Context, quizID string) ([]domain.GeneratedQuestion, error) {
	var rows []models.Question
	query := `SELECT id, quiz_id, ordinal_index, text,
		alternative_a, alternative_b, alternative_c, alternative_d,
		correct_answer, justification, topic, grade_level, difficulty, created_at
	FROM quiz_questions
	WHERE quiz_id = :1
	ORDER BY ordinal_index`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", quizID, err)
	}

	questions := make([]domain.GeneratedQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:            m.ID,
		Topic:         m.Topic,
		GradeLevel:    m.GradeLevel,
		Difficulty:    domain.Difficulty(m.Difficulty),
		QuestionCount: m.QuestionCount,
		CreatedAt:     m.CreatedAt,
	}
}

func toModelQuestion(q *domain.GeneratedQuestion) *models.Question {
	return &models.Question{
		ID:            q.ID,
		QuizID:        q.QuizID,
		OrdinalIndex:  q.OrdinalIndex,
		Text:          q.Text,
		AlternativeA:  q.AlternativeA,
		AlternativeB:  q.AlternativeB,
		AlternativeC:  q.AlternativeC,
		AlternativeD:  q.AlternativeD,
		CorrectAnswer: string(q.CorrectAnswer),
		Justification: q.Justification,
		Topic:         q.Topic,
		GradeLevel:    q.GradeLevel,
		Difficulty:    q.Difficulty,
		CreatedAt:     q.CreatedAt,
	}
}

func toDomainQuestion(m *models.Question) domain.GeneratedQuestion {
	return domain.GeneratedQuestion{
		ID:            m.ID,
		QuizID:        m.QuizID,
		OrdinalIndex:  m.OrdinalIndex,
		Text:          m.Text,
		AlternativeA:  m.AlternativeA,
		AlternativeB:  m.AlternativeB,
		AlternativeC:  m.AlternativeC,
		AlternativeD:  m.AlternativeD,
		CorrectAnswer: domain.Alternative(m.CorrectAnswer),
		Justification: m.Justification,
		Topic:         m.Topic,
		GradeLevel:    m.GradeLevel,
		Difficulty:    m.Difficulty,
		CreatedAt:     m.CreatedAt,
	}
}
