// internals/middlewares/auth/claims_utils.go
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	identityDTO "bantal_backend/internals/features/identities/identity/dto"
	identityModel "bantal_backend/internals/features/identities/identity/model"
	helper "bantal_backend/internals/helpers"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	tok := helper.GetRawAccessToken(c)
	if tok == "" {
		if strings.TrimSpace(c.Get("Authorization")) != "" {
			return "", fmt.Errorf("unauthorized - Invalid token format")
		}
		return "", fmt.Errorf("unauthorized - No token provided")
	}
	return strings.TrimSpace(tok), nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func ssoClaimsFrom(claims jwt.MapClaims) identityDTO.SSOClaims {
	email := claimString(claims, "email")
	if email == "" {
		// beberapa realm hanya mengisi upn
		email = claimString(claims, "upn")
	}
	return identityDTO.SSOClaims{
		Subject:           claimString(claims, "sub"),
		Email:             email,
		Name:              claimString(claims, "name"),
		PreferredUsername: claimString(claims, "preferred_username"),
	}
}

/* ======== Store to Locals ======== */

func storeIdentityToLocals(c *fiber.Ctx, m *identityModel.Identity, raw string) {
	c.Locals(helper.LocIdentityID, m.IdentityID.String())
	c.Locals(helper.LocIdentityRole, strings.ToLower(m.IdentityRole))
	c.Locals(helper.LocIdentityEmail, m.IdentityEmail)
	c.Locals(helper.LocRawToken, raw)
}
