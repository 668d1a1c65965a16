// file: internals/features/identities/identity/route/identity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	identityController "bantal_backend/internals/features/identities/identity/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

// router sudah melewati AuthMiddleware
func IdentityRoutes(router fiber.Router, db *gorm.DB) {
	ctl := identityController.NewIdentityController(db)

	g := router.Group("/identities")
	g.Get("/me", ctl.Me)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	adminOnly := authMiddleware.RequireRoles(constants.RoleErrorAdmin("identity"), constants.AdminOnly...)
	g.Patch("/:id", adminOnly, ctl.Update)
	g.Patch("/:id/active", adminOnly, ctl.SetActive)
}
