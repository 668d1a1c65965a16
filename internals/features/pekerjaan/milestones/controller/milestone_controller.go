// file: internals/features/pekerjaan/milestones/controller/milestone_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/milestones/dto"
	"bantal_backend/internals/features/pekerjaan/milestones/service"
	helper "bantal_backend/internals/helpers"
)

type MilestoneController struct {
	Svc       *service.Service
	Validator *validator.Validate
}

func NewMilestoneController(db *gorm.DB) *MilestoneController {
	return &MilestoneController{Svc: service.New(db), Validator: helper.NewValidator()}
}

// GET /api/pekerjaan/:id/milestones
func (ctl *MilestoneController) List(c *fiber.Ctx) error {
	projectID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	rows, err := ctl.Svc.List(c.UserContext(), projectID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /api/pekerjaan/:id/milestones/:milestoneId
func (ctl *MilestoneController) GetByID(c *fiber.Ctx) error {
	projectID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "milestoneId")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), projectID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/pekerjaan/:id/milestones
func (ctl *MilestoneController) Create(c *fiber.Ctx) error {
	projectID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.CreateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), projectID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Milestone created successfully", m)
}

// PUT /api/pekerjaan/:id/milestones/:milestoneId
func (ctl *MilestoneController) Update(c *fiber.Ctx) error {
	projectID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "milestoneId")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), projectID, id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Milestone updated successfully", m)
}

// DELETE /api/pekerjaan/:id/milestones/:milestoneId
func (ctl *MilestoneController) Delete(c *fiber.Ctx) error {
	projectID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "milestoneId")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), projectID, id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Milestone deleted successfully", fiber.Map{"milestone_id": id})
}
