// file: internals/features/masters/companies/route/company_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	companyController "bantal_backend/internals/features/masters/companies/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func CompanyRoutes(router fiber.Router, db *gorm.DB) {
	ctl := companyController.NewCompanyController(db)

	g := router.Group("/companies")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("company"), constants.ManagerAndAbove...)
	g.Post("/", canWrite, ctl.Create)
	g.Patch("/:id", canWrite, ctl.Update)
	g.Delete("/:id", canWrite, ctl.Delete)
}
