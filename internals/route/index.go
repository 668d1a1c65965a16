// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/factory"
	lcService "bantal_backend/internals/features/documents/lifecycle/service"
	authMiddleware "bantal_backend/internals/middlewares/auth"
	routeDetails "bantal_backend/internals/route/details"
)

type Deps struct {
	Registry  *factory.Registry
	Lifecycle *lcService.Service
	Verifier  *authMiddleware.Verifier
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	BaseRoutes(app, db)

	// PUBLIC → tanpa token. Harus terdaftar sebelum grup private:
	// Group("/api", mw) memasang mw untuk seluruh prefix /api.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authCtl := routeDetails.AuthPublicRoutes(public, db)

	// PRIVATE → token SSO + identity aktif
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db, deps.Verifier))

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthPrivateRoutes(private, db, authCtl)

	log.Println("[INFO] Mounting Master routes...")
	routeDetails.MasterRoutes(private, db)

	log.Println("[INFO] Mounting Document routes...")
	routeDetails.DocumentRoutes(private, db, deps.Registry, deps.Lifecycle)

	log.Println("[INFO] Mounting Pekerjaan routes...")
	routeDetails.PekerjaanRoutes(private, db)
}
