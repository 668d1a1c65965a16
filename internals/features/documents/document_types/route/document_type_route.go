// file: internals/features/documents/document_types/route/document_type_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	dtController "bantal_backend/internals/features/documents/document_types/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func DocumentTypeRoutes(router fiber.Router, db *gorm.DB, registry dtController.Reloader) {
	ctl := dtController.NewDocumentTypeController(db, registry)

	g := router.Group("/document-types")
	g.Get("/", ctl.List)
	g.Get("/:identifier", ctl.GetByIdentifier)
	g.Post("/", authMiddleware.RequireRoles(constants.RoleErrorAdmin("jenis dokumen"), constants.AdminOnly...), ctl.Create)
}
