// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const LocRawToken = "raw_token"

// Nama cookie yang diterima selain header Authorization
var tokenCookies = []string{"access_token", "auth_session"}

// GetRawAccessToken mengembalikan access token dari:
// 1) Locals("raw_token") yang diset middleware
// 2) Authorization header "Bearer <token>"
// 3) cookie access_token / auth_session
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	fields := strings.Fields(c.Get("Authorization"))
	if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	for _, name := range tokenCookies {
		if v := strings.TrimSpace(c.Cookies(name)); v != "" {
			return v
		}
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// LoginUsername: username dari body login (lowercase), kosong bila body tidak terbaca.
// Body tetap utuh untuk handler berikutnya.
func LoginUsername(c *fiber.Ctx) string {
	var body struct {
		Username string `json:"username" form:"username"`
	}
	if err := c.BodyParser(&body); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(body.Username))
}
