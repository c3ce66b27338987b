package middleware

import (
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedIDLocal is the fiber.Ctx Locals key holding a validated path ID.
const ValidatedIDLocal = "validated_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateIDParam rejects requests whose path parameter is not a ULID and
// stores the accepted value under ValidatedIDLocal.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if errs := vm.validator.ValidateID(param, id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedIDLocal, id)
		return c.Next()
	}
}
