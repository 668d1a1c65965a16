// file: internals/features/pekerjaan/projects/controller/project_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/completion"
	"bantal_backend/internals/features/pekerjaan/projects/dto"
	"bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
)

type ProjectController struct {
	Svc *service.Service
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{Svc: service.New(db)}
}

// GET /api/pekerjaan?creation_status=&progress_status=&billing_cadence=&search=
func (ctl *ProjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	f := dto.ListFilter{
		CreationStatus: strings.TrimSpace(c.Query("creation_status")),
		ProgressStatus: strings.TrimSpace(c.Query("progress_status")),
		Cadence:        strings.TrimSpace(c.Query("billing_cadence")),
		Search:         strings.TrimSpace(c.Query("search")),
		OrderBy:        helper.ParseSort(c, "created_at", "desc").OrderExpr(dto.SortColumns, "created_at"),
	}
	rows, total, err := ctl.Svc.List(c.UserContext(), f, p)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/pekerjaan/:id
func (ctl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /api/pekerjaan/:id/base-info
func (ctl *ProjectController) GetBaseInfo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.BaseInfoFrom(m))
}

// PUT /api/pekerjaan/:id/base-info
func (ctl *ProjectController) UpdateBaseInfo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.BaseInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	m, err := ctl.Svc.UpdateBaseInfo(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Base info updated successfully", dto.BaseInfoFrom(m))
}

// GET /api/pekerjaan/:id/team-structure
func (ctl *ProjectController) GetTeam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	team, err := ctl.Svc.GetTeam(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", team)
}

// PUT /api/pekerjaan/:id/team-structure
func (ctl *ProjectController) UpdateTeam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.TeamStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	team, err := ctl.Svc.UpdateTeam(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Team structure updated successfully", team)
}

// GET /api/pekerjaan/:id/completion
func (ctl *ProjectController) Completion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	res, err := completion.Get(c.UserContext(), ctl.Svc.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}
