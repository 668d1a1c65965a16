// file: internals/features/pekerjaan/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	paymentController "bantal_backend/internals/features/pekerjaan/payments/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func PaymentRoutes(router fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	g := router.Group("/pekerjaan/:id/payment-structure")
	g.Get("/", ctl.Get)

	canWrite := authMiddleware.RequireRoles(constants.RoleErrorManager("payment structure"), constants.ManagerAndAbove...)
	g.Put("/", canWrite, ctl.Update)
	g.Delete("/installments/:installmentId", canWrite, ctl.DeleteInstallment)
}
