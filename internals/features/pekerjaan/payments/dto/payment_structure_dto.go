// file: internals/features/pekerjaan/payments/dto/payment_structure_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
)

type InstallmentRequest struct {
	ID                 *uuid.UUID      `json:"id"`
	InstallmentNumber  int             `json:"installment_number"   validate:"min=1"`
	Amount             decimal.Decimal `json:"amount"`
	Percentage         decimal.Decimal `json:"percentage"`
	TriggerType        string          `json:"trigger_type"         validate:"required,oneof=milestone event date manual"`
	TriggerValue       *string         `json:"trigger_value"`
	ProjectMilestoneID *uuid.UUID      `json:"project_milestone_id"`
	Description        string          `json:"description"          validate:"required"`
	Status             string          `json:"status"               validate:"omitempty,oneof=pending due cleared requested paid issue"`
	Notes              *string         `json:"notes"`
}

type BasicInfoRequest struct {
	ProjectFee    *decimal.Decimal `json:"project_fee"`
	Currency      *string          `json:"currency"`
	BankName      *string          `json:"bank_name"`
	AccountNumber *string          `json:"account_number"`
	AccountName   *string          `json:"account_name"`
}

// PaymentStructureRequest: kedua bagian opsional
type PaymentStructureRequest struct {
	BasicInfo    *BasicInfoRequest     `json:"basic_info"   validate:"omitempty"`
	Installments []InstallmentRequest `json:"installments" validate:"omitempty,dive"`
}

func (r *PaymentStructureRequest) Normalize() {
	for i := range r.Installments {
		in := &r.Installments[i]
		in.TriggerType = strings.ToLower(strings.TrimSpace(in.TriggerType))
		in.Description = strings.TrimSpace(in.Description)
		in.Status = strings.ToLower(strings.TrimSpace(in.Status))
		if in.TriggerValue != nil {
			v := strings.TrimSpace(*in.TriggerValue)
			in.TriggerValue = &v
		}
	}
	if b := r.BasicInfo; b != nil {
		for _, p := range []*string{b.Currency, b.BankName, b.AccountNumber, b.AccountName} {
			if p != nil {
				*p = strings.TrimSpace(*p)
			}
		}
		if b.Currency != nil {
			*b.Currency = strings.ToUpper(*b.Currency)
		}
	}
}

type BasicInfoResponse struct {
	ProjectFee    *decimal.Decimal `json:"project_fee"`
	Currency      string           `json:"currency"`
	BankName      *string          `json:"bank_name"`
	AccountNumber *string          `json:"account_number"`
	AccountName   *string          `json:"account_name"`
}

type PaymentStructureResponse struct {
	ProjectID            uuid.UUID `json:"pekerjaan_id"`
	Status               string    `json:"status"`
	CompletionPercentage int       `json:"completion_percentage"`
	Data                 struct {
		BasicInfo    BasicInfoResponse   `json:"basic_info"`
		Installments []model.Installment `json:"installments"`
	} `json:"data"`
}

func BuildResponse(p *projModel.Project, items []model.Installment, completion int) PaymentStructureResponse {
	var out PaymentStructureResponse
	out.ProjectID = p.PekerjaanID
	out.Status = string(p.PekerjaanCreationStatus)
	out.CompletionPercentage = completion
	out.Data.BasicInfo = BasicInfoResponse{
		ProjectFee:    p.PekerjaanProjectFee,
		Currency:      p.PekerjaanCurrency,
		BankName:      p.PekerjaanBankName,
		AccountNumber: p.PekerjaanAccountNumber,
		AccountName:   p.PekerjaanAccountName,
	}
	if items == nil {
		items = []model.Installment{}
	}
	out.Data.Installments = items
	return out
}
