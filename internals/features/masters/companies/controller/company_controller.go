// file: internals/features/masters/companies/controller/company_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/masters/companies/dto"
	"bantal_backend/internals/features/masters/companies/model"
	helper "bantal_backend/internals/helpers"
)

type CompanyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db, Validator: helper.NewValidator()}
}

// GET /api/companies?search=&active=true
func (ctl *CompanyController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Company{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(company_name) LIKE ? OR LOWER(company_code) LIKE ?", like, like)
	}
	if c.QueryBool("active", false) {
		q = q.Scopes(model.ScopeActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung company")
	}
	var rows []model.Company
	if err := q.Order("company_name ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil company")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/companies/:id
func (ctl *CompanyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var m model.Company
	if err := ctl.DB.WithContext(c.UserContext()).Where("company_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, `Company with ID "`+id.String()+`" not found`)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil company")
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/companies
func (ctl *CompanyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var createdBy *string
	if id := helper.OptionalIdentityID(c); id != nil {
		s := id.String()
		createdBy = &s
	}
	m := req.ToModel(createdBy)
	want := m.CompanyIsActive
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create company: %v", err)
		return helper.JsonAppError(c, err)
	}
	// false = zero value, insert memakai default kolom (true)
	if !want {
		if err := db.Model(&m).Update("company_is_active", false).Error; err != nil {
			return helper.JsonAppError(c, err)
		}
	}
	return helper.JsonCreated(c, "Company berhasil dibuat", m)
}

// PATCH /api/companies/:id
func (ctl *CompanyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Company
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Where("company_id = ?", id).Take(&m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	if up := req.ToUpdates(); len(up) > 0 {
		if err := db.Model(&m).Updates(up).Error; err != nil {
			return helper.JsonAppError(c, err)
		}
	}
	if err := db.Where("company_id = ?", id).Take(&m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Company diperbarui", m)
}

// DELETE /api/companies/:id
func (ctl *CompanyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	res := ctl.DB.WithContext(c.UserContext()).Where("company_id = ?", id).Delete(&model.Company{})
	if res.Error != nil {
		return helper.JsonAppError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Company dihapus", fiber.Map{"company_id": id})
}
