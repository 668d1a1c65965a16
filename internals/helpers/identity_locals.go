// file: internals/helpers/identity_locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Key Locals yang diisi AuthMiddleware
const (
	LocIdentityID    = "identity_id"
	LocIdentityRole  = "identity_role"
	LocIdentityEmail = "identity_email"
)

// Ambil identity_id dari c.Locals.
// 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetIdentityID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocIdentityID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identity ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identity ID pada token tidak valid")
	}
}

// Versi lunak: nil bila tidak ada identity di request
func OptionalIdentityID(c *fiber.Ctx) *uuid.UUID {
	id, err := GetIdentityID(c)
	if err != nil {
		return nil
	}
	return &id
}

func GetIdentityRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocIdentityRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, Validation(name, "%s bukan UUID yang valid", name)
	}
	return id, nil
}
