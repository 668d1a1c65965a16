package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"bantal_backend/internals/blobs"
	"bantal_backend/internals/configs"
	database "bantal_backend/internals/databases"
	"bantal_backend/internals/features/documents/factory"
	lcService "bantal_backend/internals/features/documents/lifecycle/service"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	"bantal_backend/internals/features/pekerjaan/scheduler"
	helper "bantal_backend/internals/helpers"
	middlewares "bantal_backend/internals/middlewares"
	authMiddleware "bantal_backend/internals/middlewares/auth"
	routes "bantal_backend/internals/route"
	"bantal_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             int(helper.MaxUploadSize * 3),
		ErrorHandler:          helper.FromFiberError,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timeout per request
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.AutoMigrate()
	seeds.RunAllSeeds(database.DB)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootCancel()

	// 📦 blob store
	store, err := blobs.Open(bootCtx)
	if err != nil {
		log.Fatalf("❌ Blob store gagal dibuka: %v", err)
	}
	log.Printf("✅ Blob store siap (driver=%s)", store.Driver())

	// 🧭 dispatcher dokumen dibangun sekali sebelum Listen
	registry := factory.NewRegistry(projectService.New(database.DB))
	if err := registry.Build(bootCtx, database.DB); err != nil {
		log.Fatalf("❌ Registry dokumen gagal dibangun: %v", err)
	}

	verifier, err := authMiddleware.NewVerifierFromConfig()
	if err != nil {
		log.Printf("⚠️ Verifier token tidak aktif: %v", err)
	}

	// ⏱ scheduler setelah DB siap
	cron, err := scheduler.StartInstallmentDueCron(database.DB)
	if err != nil {
		log.Fatalf("❌ Cron termin gagal: %v", err)
	}

	routes.SetupRoutes(app, database.DB, routes.Deps{
		Registry:  registry,
		Lifecycle: lcService.New(database.DB, registry, store),
		Verifier:  verifier,
	})

	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: HTTP, cron, blob store, pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cron.Stop().Done()
	if err := store.Close(ctx); err != nil {
		log.Printf("[ERROR] tutup blob store: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
