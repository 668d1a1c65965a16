package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	divisionController "bantal_backend/internals/features/masters/divisions/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func DivisionRoutes(router fiber.Router, db *gorm.DB) {
	ctl := divisionController.NewDivisionController(db)
	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("divisi"), constants.ManagerAndAbove...)

	g := router.Group("/divisions")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", canWrite, ctl.Create)
	g.Put("/:id", canWrite, ctl.Update)
	g.Delete("/:id", canWrite, ctl.Delete)
}
