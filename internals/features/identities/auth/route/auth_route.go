// file: internals/features/identities/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bantal_backend/internals/features/identities/auth/controller"
	"bantal_backend/internals/features/identities/auth/service"
	rateLimiter "bantal_backend/internals/middlewares"
)

// AuthPublicRoutes: tanpa token (login & refresh)
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) *authController.AuthController {
	ctl := authController.NewAuthController(db, service.NewKeycloakClientFromConfig())

	g := router.Group("/auth")
	g.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	g.Post("/refresh", ctl.Refresh)
	return ctl
}

// AuthProtectedRoutes: router sudah melewati AuthMiddleware
func AuthProtectedRoutes(router fiber.Router, ctl *authController.AuthController) {
	router.Get("/auth/me", ctl.Me)
}
