// file: internals/features/pekerjaan/milestones/route/milestone_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	milestoneController "bantal_backend/internals/features/pekerjaan/milestones/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func MilestoneRoutes(router fiber.Router, db *gorm.DB) {
	ctl := milestoneController.NewMilestoneController(db)

	g := router.Group("/pekerjaan/:id/milestones")
	g.Get("/", ctl.List)
	g.Get("/:milestoneId", ctl.GetByID)

	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("milestone"), constants.ManagerAndAbove...)
	g.Post("/", canWrite, ctl.Create)
	g.Put("/:milestoneId", canWrite, ctl.Update)
	g.Delete("/:milestoneId", canWrite, ctl.Delete)
}
