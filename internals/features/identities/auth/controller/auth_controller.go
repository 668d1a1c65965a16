// file: internals/features/identities/auth/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/identities/auth/dto"
	"bantal_backend/internals/features/identities/auth/service"
	identityService "bantal_backend/internals/features/identities/identity/service"
	helper "bantal_backend/internals/helpers"
)

type AuthController struct {
	SSO        *service.KeycloakClient
	Identities *identityService.Service
	Validator  *validator.Validate
}

func NewAuthController(db *gorm.DB, sso *service.KeycloakClient) *AuthController {
	return &AuthController{SSO: sso, Identities: identityService.New(db), Validator: helper.NewValidator()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ac.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	tok, err := ac.SSO.PasswordGrant(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	setAuthCookies(c, tok, time.Now())
	return helper.JsonOK(c, "Login berhasil", tok)
}

// POST /api/auth/refresh (body atau cookie refresh_token)
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req)
	rt := strings.TrimSpace(req.RefreshToken)
	if rt == "" {
		rt = helper.GetRefreshTokenFromCookie(c)
	}
	if rt == "" {
		return helper.JsonAppError(c, helper.Validation("refresh_token", "Refresh token is required"))
	}
	tok, err := ac.SSO.Refresh(c.UserContext(), rt)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	setAuthCookies(c, tok, time.Now())
	return helper.JsonOK(c, "Token diperbarui", tok)
}

// GET /api/auth/me (butuh AuthMiddleware)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetIdentityID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	m, err := ac.Identities.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

func setAuthCookies(c *fiber.Ctx, tok *dto.TokenResponse, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tok.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(time.Duration(tok.ExpiresIn) * time.Second),
	})
	if tok.RefreshToken == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tok.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(time.Duration(tok.RefreshExpiresIn) * time.Second),
	})
}
