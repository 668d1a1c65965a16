// file: internals/features/documents/master_documents/controller/master_document_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	"bantal_backend/internals/features/documents/master_documents/dto"
	"bantal_backend/internals/features/documents/master_documents/service"
	helper "bantal_backend/internals/helpers"
)

type MasterDocumentController struct {
	Svc       *service.Service
	Validator *validator.Validate
}

func NewMasterDocumentController(db *gorm.DB) *MasterDocumentController {
	return &MasterDocumentController{Svc: service.New(db), Validator: helper.NewValidator()}
}

// GET /api/documents?type_id=&status=&company_id=&division_id=&search=&active=true
func (ctl *MasterDocumentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	f := dto.ListFilter{
		Search:     c.Query("search"),
		OnlyActive: c.QueryBool("active", true),
		Offset:     p.Offset,
		Limit:      p.Limit,
	}
	if v := strings.TrimSpace(c.Query("type_id")); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return helper.JsonAppError(c, helper.Validation("type_id", "type_id tidak valid"))
		}
		id := uint(n)
		f.TypeID = &id
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st, ok := constants.ParseDocumentStatus(v)
		if !ok {
			return helper.JsonAppError(c, helper.Validation("status", "status %q tidak dikenal", v))
		}
		f.Status = &st
	}
	var err error
	if f.CompanyID, err = optionalUUID(c, "company_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if f.DivisionID, err = optionalUUID(c, "division_id"); err != nil {
		return helper.JsonAppError(c, err)
	}

	rows, total, err := ctl.Svc.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/documents/:id
func (ctl *MasterDocumentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /api/documents/latest-index/:shorthand?month=&year=&company_id=
func (ctl *MasterDocumentController) LatestIndex(c *fiber.Ctx) error {
	month, err := optionalInt(c, "month")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	year, err := optionalInt(c, "year")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	companyID, err := optionalUUID(c, "company_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	shorthand := c.Params("shorthand")
	latest, err := ctl.Svc.GetLatestIndexNumber(c.UserContext(), shorthand, month, year, companyID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"shorthand":    shorthand,
		"latest_index": latest,
		"next_index":   latest + 1,
		"month":        month,
		"year":         year,
		"company_id":   companyID,
	})
}

// PATCH /api/documents/:id/status
func (ctl *MasterDocumentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Status dokumen diperbarui", dto.FromModel(m))
}

// PATCH /api/documents/:id/active
func (ctl *MasterDocumentController) SetActive(c *fiber.Ctx) error {
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
	m, err := ctl.Svc.SetActive(c.UserContext(), id, *req.IsActive)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Dokumen diperbarui", dto.FromModel(m))
}

func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, helper.Validation(key, "%s harus berupa angka", key)
	}
	return &n, nil
}

func optionalUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, helper.Validation(key, "%s bukan UUID yang valid", key)
	}
	return &id, nil
}
