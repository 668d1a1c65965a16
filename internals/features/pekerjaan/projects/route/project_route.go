// file: internals/features/pekerjaan/projects/route/project_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	projectController "bantal_backend/internals/features/pekerjaan/projects/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func ProjectRoutes(router fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectController(db)

	g := router.Group("/pekerjaan")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/base-info", ctl.GetBaseInfo)
	g.Get("/:id/team-structure", ctl.GetTeam)
	g.Get("/:id/completion", ctl.Completion)

	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("pekerjaan"), constants.ManagerAndAbove...)
	g.Put("/:id/base-info", canWrite, ctl.UpdateBaseInfo)
	g.Put("/:id/team-structure", canWrite, ctl.UpdateTeam)
}
