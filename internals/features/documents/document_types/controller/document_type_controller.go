// file: internals/features/documents/document_types/controller/document_type_controller.go
package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/document_types/dto"
	"bantal_backend/internals/features/documents/document_types/service"
	helper "bantal_backend/internals/helpers"
)

// Reloader: registry dispatch yang perlu dibangun ulang setelah type baru
type Reloader interface {
	Reload(ctx context.Context, db *gorm.DB) error
}

type DocumentTypeController struct {
	DB        *gorm.DB
	Svc       *service.Service
	Registry  Reloader
	Validator *validator.Validate
}

func NewDocumentTypeController(db *gorm.DB, registry Reloader) *DocumentTypeController {
	return &DocumentTypeController{
		DB:        db,
		Svc:       service.New(db),
		Registry:  registry,
		Validator: helper.NewValidator(),
	}
}

// GET /api/document-types
func (ctl *DocumentTypeController) List(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET /api/document-types/:identifier  (nama atau shorthand)
func (ctl *DocumentTypeController) GetByIdentifier(c *fiber.Ctx) error {
	m, err := ctl.Svc.FindByIdentifier(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /api/document-types
func (ctl *DocumentTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreateDocumentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Svc.Create(c.UserContext(), service.CreateInput{
		Name:      req.DocumentTypeName,
		Shorthand: req.DocumentTypeShorthand,
		Handler:   req.HandlerKey(),
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if ctl.Registry != nil {
		if err := ctl.Registry.Reload(c.UserContext(), ctl.DB); err != nil {
			log.Printf("[ERROR] reload registry dokumen: %v", err)
		}
	}
	return helper.JsonCreated(c, "Jenis dokumen berhasil dibuat", dto.FromModel(*m))
}
