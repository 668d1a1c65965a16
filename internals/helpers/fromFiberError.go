package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError dipakai sebagai fiber.Config.ErrorHandler sehingga semua
// error (AppError, *fiber.Error, error DB) keluar dengan bentuk yang sama.
func FromFiberError(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return JsonAppError(c, err)
}
