// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	identityDTO "bantal_backend/internals/features/identities/identity/dto"
	identityModel "bantal_backend/internals/features/identities/identity/model"
	identityService "bantal_backend/internals/features/identities/identity/service"
	helper "bantal_backend/internals/helpers"
)

type IdentitySyncer interface {
	ValidateAndSync(ctx context.Context, claims identityDTO.SSOClaims) (*identityModel.Identity, error)
}

const expirySkew = 30 * time.Second

func AuthMiddleware(db *gorm.DB, verifier *Verifier) fiber.Handler {
	return AuthMiddlewareWith(identityService.New(db), verifier)
}

func AuthMiddlewareWith(syncer IdentitySyncer, verifier *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if verifier == nil {
			log.Println("[ERROR] Verifier token belum dikonfigurasi")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing token verifier")
		}

		// 2) Verifikasi signature
		claims, err := verifier.Parse(tokenString)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		// 3) Validasi exp
		if err := validateTokenExpiry(claims, expirySkew); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		// 4) Identity harus terdaftar & aktif, subject SSO di-sync
		identity, err := syncer.ValidateAndSync(c.UserContext(), ssoClaimsFrom(claims))
		if err != nil {
			if errors.Is(err, helper.ErrForbidden) {
				return helper.JsonAppError(c, err)
			}
			log.Println("[ERROR] Sinkronisasi identity:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		storeIdentityToLocals(c, identity, tokenString)
		return c.Next()
	}
}
