package middleware

import (
	"errors"
	"log"

	"splgadgets/internal/repositories"
	"splgadgets/internal/services"
	"splgadgets/internal/upload"
	"splgadgets/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the terminal error-translation stage: every failure a
// handler returns is normalized here to a status code and message. Outside
// production mode the underlying cause is attached to the response body.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fieldErr *validation.FieldError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &fieldErr):
			status = fiber.StatusBadRequest
			message = fieldErr.Message
		case errors.Is(err, services.ErrInvalidStatus):
			status = fiber.StatusBadRequest
			message = "Invalid order status"
		case errors.Is(err, upload.ErrUnsupportedFileType):
			status = fiber.StatusBadRequest
			message = "Only image files are allowed (jpeg, jpg, png, gif)"
		case errors.Is(err, upload.ErrFileTooLarge):
			status = fiber.StatusBadRequest
			message = "File exceeds the 5MB size limit"
		case errors.Is(err, repositories.ErrOrderNotFound):
			status = fiber.StatusNotFound
			message = "Order not found"
		case errors.Is(err, repositories.ErrProductNotFound):
			status = fiber.StatusNotFound
			message = "Product not found"
		}

		if status >= fiber.StatusInternalServerError {
			log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
		}

		body := fiber.Map{"error": message}
		if !production && status >= fiber.StatusInternalServerError {
			body["detail"] = err.Error()
		}
		return c.Status(status).JSON(body)
	}
}
