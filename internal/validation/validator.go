package validation

import (
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/util"
)

const (
	maxTopicLength      = 500
	maxGradeLevelLength = 100
)

// Validator provides request validation functionality
type Validator struct {
	maxQuestionCount int
}

// NewValidator creates a new validator instance. maxQuestionCount caps a
// single generation request.
func NewValidator(maxQuestionCount int) *Validator {
	if maxQuestionCount <= 0 {
		maxQuestionCount = 50
	}
	return &Validator{maxQuestionCount: maxQuestionCount}
}

// ValidateGenerateRequest checks a generation request and returns the
// canonical spec when it is acceptable.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateQuizRequest) (domain.QuizSpec, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	var spec domain.QuizSpec

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(topic) > maxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(topic), 1, maxTopicLength))
	}

	gradeLevel := strings.TrimSpace(req.GradeLevel)
	if gradeLevel == "" {
		errors = append(errors, domain.NewMissingFieldError("gradeLevel"))
	} else if len(gradeLevel) > maxGradeLevelLength {
		errors = append(errors, domain.NewOutOfRangeError("gradeLevel", len(gradeLevel), 1, maxGradeLevelLength))
	}

	difficulty, ok := domain.ParseDifficulty(req.Difficulty)
	if strings.TrimSpace(req.Difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	} else if !ok {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	if req.QuestionCount < 1 || req.QuestionCount > v.maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("questionCount", req.QuestionCount, 1, v.maxQuestionCount))
	}

	if len(errors) > 0 {
		return spec, errors
	}

	spec = domain.QuizSpec{
		Topic:         topic,
		GradeLevel:    gradeLevel,
		Difficulty:    difficulty,
		QuestionCount: req.QuestionCount,
	}
	return spec, nil
}

// ValidateScoreRequest validates the identifiers of a scoring request. An empty
// answer list is rejected by the scoring service, not here.
func (v *Validator) ValidateScoreRequest(req *dto.ScoreRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateID("userId", req.UserID)...)
	errors = append(errors, v.ValidateID("quizId", req.QuizID)...)

	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.questionId"))
			break
		}
	}

	return errors
}

// ValidateID checks that value is a non-empty ULID.
func (v *Validator) ValidateID(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(value) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}
