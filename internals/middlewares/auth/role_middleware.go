package auth

import (
	"log"
	"slices"

	"github.com/gofiber/fiber/v2"

	"bantal_backend/internals/constants"
	helper "bantal_backend/internals/helpers"
)

// RequireRoles: dipasang setelah AuthMiddleware. Role yang tidak dikenal
// (data identity rusak) diperlakukan sama dengan role tanpa akses.
func RequireRoles(forbiddenMessage string, allowedRoles ...string) fiber.Handler {
	if forbiddenMessage == "" {
		forbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetIdentityRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if constants.IsValidRole(role) && slices.Contains(allowedRoles, role) {
			return c.Next()
		}

		log.Printf("[AUTH] role %q ditolak untuk %s %s (identity=%v)", role, c.Method(), c.Path(), c.Locals(helper.LocIdentityEmail))
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}
