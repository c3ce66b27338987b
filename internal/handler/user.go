package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser godoc
// @Summary Get a user
// @Description Returns a user and their cumulative points
// @Tags users
// @Produce json
// @Param userId path string true "User ID (ULID)"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.ValidatedIDLocal).(string)
	if userID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("userId")}
	}

	resp, err := h.userService.GetUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
