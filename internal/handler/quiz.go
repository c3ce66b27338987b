package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService    service.QuizService
	scoringService service.ScoringService
	validator      *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, scoringService service.ScoringService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		scoringService: scoringService,
		validator:      validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates multiple-choice questions with the language model, stores them and returns the reviewer's advisory verdicts
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz specification"
// @Success 201 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object")
	}

	spec, errs := h.validator.ValidateGenerateRequest(&req)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.GenerateQuiz(c.UserContext(), spec)
	if err != nil {
		return err
	}
	if resp.ValidationWarning != "" {
		logger.Get().Warn("Quiz generated without validation",
			zap.String("quiz_id", resp.QuizID),
			zap.String("warning", resp.ValidationWarning))
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuizQuestions godoc
// @Summary Get quiz questions
// @Description Returns the stored questions of a quiz. Correct answers and justifications are hidden unless include_answers=true
// @Tags quiz
// @Produce json
// @Param quizId path string true "Quiz ID (ULID)"
// @Param include_answers query bool false "Include correct answers and justifications"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{quizId}/questions [get]
func (h *QuizHandler) GetQuizQuestions(c *fiber.Ctx) error {
	quizID, _ := c.Locals(middleware.ValidatedIDLocal).(string)
	if errs := h.validator.ValidateID("quizId", quizID); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.GetQuizQuestions(c.UserContext(), quizID, c.QueryBool("include_answers", false))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ScoreQuiz godoc
// @Summary Score answers
// @Description Awards points for correct answers by question difficulty and adds them to the user's total
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.ScoreRequest true "Answers"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/score [post]
func (h *QuizHandler) ScoreQuiz(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object")
	}

	if errs := h.validator.ValidateScoreRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.scoringService.ScoreQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
