// file: internals/features/masters/clients/controller/client_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/masters/clients/dto"
	"bantal_backend/internals/features/masters/clients/model"
	helper "bantal_backend/internals/helpers"
)

type ClientController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db, Validator: helper.NewValidator()}
}

/* ===============================
   CLIENTS
   =============================== */

// GET /api/clients?search=&status=&type_id=
func (ctl *ClientController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Client{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR LOWER(client_contact_name) LIKE ?", like, like)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		status := model.ClientStatus(st)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Scopes(model.ScopeByStatus(status))
	}
	if t := c.QueryInt("type_id", 0); t > 0 {
		q = q.Where("client_type_id = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung client")
	}
	var rows []model.Client
	if err := q.Preload("ClientType").
		Order("client_priority_number ASC, client_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

func (ctl *ClientController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.loadClient(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctl *ClientController) Create(c *fiber.Ctx) error {
	req, err := ctl.parseClient(c)
	if err != nil {
		return renderParseError(c, err)
	}

	m := dto.NewClient()
	if err := req.Apply(&m); err != nil {
		return helper.JsonAppError(c, helper.Validation("client_date_of_first_project", "tanggal tidak valid"))
	}
	if err := ctl.ensureType(c, m.ClientTypeID); err != nil {
		return helper.JsonAppError(c, err)
	}
	want := m.ClientIsWapu
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Create(&m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	if !want {
		if err := db.Model(&m).Update("client_is_wapu", false).Error; err != nil {
			return helper.JsonAppError(c, err)
		}
	}
	return helper.JsonCreated(c, "Client berhasil dibuat", m)
}

func (ctl *ClientController) Update(c *fiber.Ctx) error {
	m, err := ctl.loadClient(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	req, err := ctl.parseClient(c)
	if err != nil {
		return renderParseError(c, err)
	}
	if err := req.Apply(m); err != nil {
		return helper.JsonAppError(c, helper.Validation("client_date_of_first_project", "tanggal tidak valid"))
	}
	if err := ctl.ensureType(c, m.ClientTypeID); err != nil {
		return helper.JsonAppError(c, err)
	}
	m.ClientType = nil
	if err := ctl.DB.WithContext(c.UserContext()).Omit("ClientType").Save(m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Client diperbarui", m)
}

func (ctl *ClientController) Delete(c *fiber.Ctx) error {
	m, err := ctl.loadClient(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&model.Client{}, "client_id = ?", m.ClientID).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Client dihapus", fiber.Map{"client_id": m.ClientID})
}

func (ctl *ClientController) parseClient(c *fiber.Ctx) (*dto.ClientRequest, error) {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.Validation("body", "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func renderParseError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return helper.ValidationError(c, err)
	}
	return helper.JsonAppError(c, err)
}

func (ctl *ClientController) loadClient(c *fiber.Ctx) (*model.Client, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.Client
	err = ctl.DB.WithContext(c.UserContext()).Preload("ClientType").Where("client_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(`Client with ID "%s" not found`, id)
	}
	return &m, err
}

func (ctl *ClientController) ensureType(c *fiber.Ctx, id uint) error {
	var n int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.ClientType{}).Where("client_type_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound(`Client type with ID "%d" not found`, id)
	}
	return nil
}

/* ===============================
   CLIENT TYPES
   =============================== */

func (ctl *ClientController) ListTypes(c *fiber.Ctx) error {
	var rows []model.ClientType
	if err := ctl.DB.WithContext(c.UserContext()).Order("client_type_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client type")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

func (ctl *ClientController) GetTypeByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var m model.ClientType
	if err := ctl.DB.WithContext(c.UserContext()).Where("client_type_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, `Client type with ID "`+c.Params("id")+`" not found`)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client type")
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctl *ClientController) CreateType(c *fiber.Ctx) error {
	var req dto.ClientTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ClientTypeName = strings.TrimSpace(req.ClientTypeName)
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := model.ClientType{ClientTypeName: req.ClientTypeName, ClientTypeDescription: req.ClientTypeDescription}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Client type berhasil dibuat", m)
}
