package models

import (
	"time"
)

// Quiz maps a row of the QUIZZES table.
type Quiz struct {
	ID            string    `db:"ID"`
	Topic         string    `db:"TOPIC"`
	GradeLevel    string    `db:"GRADE_LEVEL"`
	Difficulty    string    `db:"DIFFICULTY"`
	QuestionCount int       `db:"QUESTION_COUNT"`
	CreatedAt     time.Time `db:"CREATED_AT"`
}

// Question maps a row of the QUIZ_QUESTIONS table.
type Question struct {
	ID            string    `db:"ID"`
	QuizID        string    `db:"QUIZ_ID"`
	OrdinalIndex  int       `db:"ORDINAL_INDEX"`
	Text          string    `db:"TEXT"`
	AlternativeA  string    `db:"ALTERNATIVE_A"`
	AlternativeB  string    `db:"ALTERNATIVE_B"`
	AlternativeC  string    `db:"ALTERNATIVE_C"`
	AlternativeD  string    `db:"ALTERNATIVE_D"`
	CorrectAnswer string    `db:"CORRECT_ANSWER"`
	Justification string    `db:"JUSTIFICATION"`
	Topic         string    `db:"TOPIC"`
	GradeLevel    string    `db:"GRADE_LEVEL"`
	Difficulty    string    `db:"DIFFICULTY"`
	CreatedAt     time.Time `db:"CREATED_AT"`
}
