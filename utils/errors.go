package utils

import (
	"errors"

	"tms-lite/services"
	"tms-lite/types"

	"github.com/gofiber/fiber/v2"
)

// StatusFromError maps service errors to HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrDuplicateBox):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// SendError writes err as an ApiResponse. Internal errors are not echoed.
func SendError(c *fiber.Ctx, err error) error {
	status := StatusFromError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
	})
}

// BadRequest writes a 400 ApiResponse with message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}
