// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bantal_backend/internals/features/identities/auth/controller"
	authRoute "bantal_backend/internals/features/identities/auth/route"
	identityRoute "bantal_backend/internals/features/identities/identity/route"
)

func AuthPublicRoutes(public fiber.Router, db *gorm.DB) *authController.AuthController {
	return authRoute.AuthPublicRoutes(public, db)
}

func AuthPrivateRoutes(private fiber.Router, db *gorm.DB, ctl *authController.AuthController) {
	authRoute.AuthProtectedRoutes(private, ctl)
	identityRoute.IdentityRoutes(private, db)
}
