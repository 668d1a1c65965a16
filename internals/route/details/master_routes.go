// file: internals/route/details/master_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientRoute "bantal_backend/internals/features/masters/clients/route"
	companyRoute "bantal_backend/internals/features/masters/companies/route"
	divisionRoute "bantal_backend/internals/features/masters/divisions/route"
)

func MasterRoutes(router fiber.Router, db *gorm.DB) {
	companyRoute.CompanyRoutes(router, db)
	divisionRoute.DivisionRoutes(router, db)
	clientRoute.ClientRoutes(router, db)
}
