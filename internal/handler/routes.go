package handler

import (
	"quiz-forge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the quiz and user endpoints on api.
func RegisterRoutes(api fiber.Router, quiz *QuizHandler, user *UserHandler, vm *middleware.ValidationMiddleware) {
	quizzes := api.Group("/quizzes")
	quizzes.Post("/", quiz.GenerateQuiz)
	quizzes.Post("/score", quiz.ScoreQuiz)
	quizzes.Get("/:quizId/questions", vm.ValidateIDParam("quizId"), quiz.GetQuizQuestions)

	users := api.Group("/users")
	users.Get("/:userId", vm.ValidateIDParam("userId"), user.GetUser)
}
