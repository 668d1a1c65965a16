// file: internals/features/identities/identity/controller/identity_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/identities/identity/dto"
	"bantal_backend/internals/features/identities/identity/service"
	helper "bantal_backend/internals/helpers"
)

type IdentityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	svc       *service.Service
}

func NewIdentityController(db *gorm.DB) *IdentityController {
	return &IdentityController{DB: db, Validator: helper.NewValidator(), svc: service.New(db)}
}

// GET /api/identities?search=&role=&is_active=
func (ctl *IdentityController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	f := service.ListFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Paging: p,
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		b := v == "true" || v == "1"
		f.IsActive = &b
	}

	rows, total, err := ctl.svc.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/identities/:id
func (ctl *IdentityController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.svc.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// GET /api/identities/me
func (ctl *IdentityController) Me(c *fiber.Ctx) error {
	id, err := helper.GetIdentityID(c)
	if err != nil {
		return err
	}
	m, err := ctl.svc.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// PATCH /api/identities/:id (admin)
func (ctl *IdentityController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdateIdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Identity diperbarui", dto.FromModel(*m))
}

// PATCH /api/identities/:id/active (admin)
func (ctl *IdentityController) SetActive(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.svc.SetActive(c.UserContext(), id, *req.IsActive)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Status identity diperbarui", dto.FromModel(*m))
}
