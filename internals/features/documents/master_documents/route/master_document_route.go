// file: internals/features/documents/master_documents/route/master_document_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	mdController "bantal_backend/internals/features/documents/master_documents/controller"
	authMiddleware "bantal_backend/internals/middlewares/auth"
)

func MasterDocumentRoutes(router fiber.Router, db *gorm.DB) {
	ctl := mdController.NewMasterDocumentController(db)

	g := router.Group("/documents")
	g.Get("/", ctl.List)
	g.Get("/latest-index/:shorthand", ctl.LatestIndex)
	g.Get("/:id", ctl.GetByID)

	canManage := authMiddleware.RequireRoles(constants.RoleErrorManager("status dokumen"), constants.ManagerAndAbove...)
	g.Patch("/:id/status", canManage, ctl.UpdateStatus)
	g.Patch("/:id/active", canManage, ctl.SetActive)
}
