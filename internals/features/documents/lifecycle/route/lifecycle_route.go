// file: internals/features/documents/lifecycle/route/lifecycle_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	lcController "bantal_backend/internals/features/documents/lifecycle/controller"
	lcService "bantal_backend/internals/features/documents/lifecycle/service"
)

func LifecycleRoutes(router fiber.Router, svc *lcService.Service) {
	ctl := lcController.NewLifecycleController(svc)

	g := router.Group("/documents")
	g.Post("/create/:documentType", ctl.Create)
	g.Post("/finalize/:documentType", ctl.Finalize)
	g.Get("/:id/detail", ctl.Detail)
	g.Put("/:id/revisions", ctl.Revise)
	g.Get("/:id/file", ctl.DownloadFile)
	g.Get("/:id/file/versions", ctl.FileVersions)
}
