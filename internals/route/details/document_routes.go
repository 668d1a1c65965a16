// file: internals/route/details/document_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docTypeRoute "bantal_backend/internals/features/documents/document_types/route"
	"bantal_backend/internals/features/documents/factory"
	lcRoute "bantal_backend/internals/features/documents/lifecycle/route"
	lcService "bantal_backend/internals/features/documents/lifecycle/service"
	mdRoute "bantal_backend/internals/features/documents/master_documents/route"
)

// DocumentRoutes: lifecycle (create/finalize/revisi/file) didaftarkan sebelum
// registry master document agar /documents/create/* tidak tertangkap /:id
func DocumentRoutes(router fiber.Router, db *gorm.DB, registry *factory.Registry, svc *lcService.Service) {
	docTypeRoute.DocumentTypeRoutes(router, db, registry)
	lcRoute.LifecycleRoutes(router, svc)
	mdRoute.MasterDocumentRoutes(router, db)
}
