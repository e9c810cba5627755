package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// ErrorHandler отдаёт любую ошибку как {"error": "..."}.
// Ошибки, не являющиеся *fiber.Error, логируются и скрываются за 500.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[HTTP] %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
