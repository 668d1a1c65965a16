// file: internals/route/details/pekerjaan_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	milestoneRoute "bantal_backend/internals/features/pekerjaan/milestones/route"
	paymentRoute "bantal_backend/internals/features/pekerjaan/payments/route"
	projectRoute "bantal_backend/internals/features/pekerjaan/projects/route"
)

func PekerjaanRoutes(router fiber.Router, db *gorm.DB) {
	milestoneRoute.MilestoneRoutes(router, db)
	paymentRoute.PaymentRoutes(router, db)
	projectRoute.ProjectRoutes(router, db)
}
