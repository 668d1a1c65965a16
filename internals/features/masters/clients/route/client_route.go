package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	clientController "bantal_backend/internals/features/masters/clients/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func ClientRoutes(router fiber.Router, db *gorm.DB) {
	ctl := clientController.NewClientController(db)
	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("client"), constants.ManagerAndAbove...)

	types := router.Group("/client-types")
	types.Get("/", ctl.ListTypes)
	types.Get("/:id", ctl.GetTypeByID)
	types.Post("/", canWrite, ctl.CreateType)

	g := router.Group("/clients")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", canWrite, ctl.Create)
	g.Put("/:id", canWrite, ctl.Update)
	g.Delete("/:id", canWrite, ctl.Delete)
}
