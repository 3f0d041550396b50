package handlers

import (
	"errors"

	"tweeter/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// badRequest answers a body that could not be decoded.
func badRequest(c *fiber.Ctx, log logrus.FieldLogger, err error) error {
	log.WithError(err).Warn("invalid request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// serviceError maps a service error to a response: validation failures become
// 422 with a field map, anything else is a storage failure.
func serviceError(c *fiber.Ctx, log logrus.FieldLogger, action string, err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  vErr.Map(),
		})
	}

	log.WithError(err).Errorf("could not %s", action)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not " + action,
		"error":   err.Error(),
	})
}

// notImplemented answers routes that are declared but have no behavior yet.
func notImplemented(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"message": "Not implemented",
	})
}
