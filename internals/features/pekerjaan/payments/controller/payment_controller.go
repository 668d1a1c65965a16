// file: internals/features/pekerjaan/payments/controller/payment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/payments/dto"
	"bantal_backend/internals/features/pekerjaan/payments/service"
	helper "bantal_backend/internals/helpers"
)

type PaymentController struct {
	Svc       *service.Service
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{Svc: service.New(db), Validator: helper.NewValidator()}
}

// GET /api/pekerjaan/:id/payment-structure
func (ctl *PaymentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Payment structure retrieved successfully", out)
}

// PUT /api/pekerjaan/:id/payment-structure
func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.PaymentStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	out, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Payment structure updated successfully", out)
}

// DELETE /api/pekerjaan/:id/payment-structure/installments/:installmentId
func (ctl *PaymentController) DeleteInstallment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	installmentID, err := helper.ParseUUIDParam(c, "installmentId")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctl.Svc.DeleteInstallment(c.UserContext(), id, installmentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Payment installment deleted successfully", out)
}
