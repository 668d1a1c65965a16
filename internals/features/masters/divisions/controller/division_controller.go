// file: internals/features/masters/divisions/controller/division_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/masters/divisions/dto"
	"bantal_backend/internals/features/masters/divisions/model"
	helper "bantal_backend/internals/helpers"
)

type DivisionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDivisionController(db *gorm.DB) *DivisionController {
	return &DivisionController{DB: db, Validator: helper.NewValidator()}
}

func (ctl *DivisionController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Division{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(division_name) LIKE ? OR LOWER(division_code) LIKE ?", like, like)
	}
	if c.QueryBool("active", false) {
		q = q.Scopes(model.ScopeActive)
	}

	var rows []model.Division
	if err := q.Order("division_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil divisi")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

func (ctl *DivisionController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.load(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctl *DivisionController) Create(c *fiber.Ctx) error {
	var req dto.DivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Division{
		DivisionCode:        req.DivisionCode,
		DivisionName:        req.DivisionName,
		DivisionDescription: req.DivisionDescription,
		DivisionIsActive:    req.DivisionIsActive == nil || *req.DivisionIsActive,
	}
	if id := helper.OptionalIdentityID(c); id != nil {
		s := id.String()
		m.DivisionCreatedBy = &s
	}
	want := m.DivisionIsActive
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Create(&m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	// false = zero value, insert memakai default kolom (true)
	if !want {
		if err := db.Model(&m).Update("division_is_active", false).Error; err != nil {
			return helper.JsonAppError(c, err)
		}
	}
	return helper.JsonCreated(c, "Divisi berhasil dibuat", m)
}

// PUT /api/divisions/:id (replace penuh)
func (ctl *DivisionController) Update(c *fiber.Ctx) error {
	m, err := ctl.load(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.DivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m.DivisionCode = req.DivisionCode
	m.DivisionName = req.DivisionName
	m.DivisionDescription = req.DivisionDescription
	if req.DivisionIsActive != nil {
		m.DivisionIsActive = *req.DivisionIsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Divisi diperbarui", m)
}

func (ctl *DivisionController) Delete(c *fiber.Ctx) error {
	m, err := ctl.load(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Divisi dihapus", fiber.Map{"division_id": m.DivisionID})
}

func (ctl *DivisionController) load(c *fiber.Ctx) (*model.Division, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.Division
	if err := ctl.DB.WithContext(c.UserContext()).Where("division_id = ?", id).Take(&m).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return &m, nil
}
