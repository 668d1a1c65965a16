// file: internals/features/documents/non_monthly_billings/model/non_monthly_billing_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
)

const (
	TableName = "surat_tagihan_non_bulanan"
	Prefix    = "tagnb_"
)

// Surat Tagihan Non Bulanan (non-monthly billing letter)
type NonMonthlyBilling struct {
	TagNBID uuid.UUID `json:"tagnb_id" gorm:"column:tagnb_id;type:uuid;primaryKey"`

	kinds.VersionMeta `gorm:"embedded;embeddedPrefix:tagnb_"`

	TagNBClientID            uuid.UUID `json:"tagnb_client_id"            gorm:"column:tagnb_client_id;type:uuid;not null;index"`
	TagNBDocumentDescription string    `json:"tagnb_document_description" gorm:"column:tagnb_document_description;type:text;not null"`

	TagNBContractValue *decimal.Decimal `json:"tagnb_contract_value,omitempty"   gorm:"column:tagnb_contract_value;type:numeric(19,2)"`
	TagNBDPPOtherValue *decimal.Decimal `json:"tagnb_dpp_other_value,omitempty"  gorm:"column:tagnb_dpp_other_value;type:numeric(19,2)"`
	TagNBVAT12         *decimal.Decimal `json:"tagnb_vat_12,omitempty"           gorm:"column:tagnb_vat_12;type:numeric(19,2)"`
	TagNBIncomeTax23   *decimal.Decimal `json:"tagnb_income_tax_23,omitempty"    gorm:"column:tagnb_income_tax_23;type:numeric(19,2)"`
	TagNBTotalBilling  *decimal.Decimal `json:"tagnb_total_billing,omitempty"    gorm:"column:tagnb_total_billing;type:numeric(19,2)"`
	TagNBBankInfo      datatypes.JSON   `json:"tagnb_bank_info,omitempty"        gorm:"column:tagnb_bank_info;type:jsonb"`

	// SPK (master document) yang ditagih, opsional
	TagNBWorkAgreementID *uuid.UUID `json:"tagnb_work_agreement_id,omitempty" gorm:"column:tagnb_work_agreement_id;type:uuid"`

	TagNBCreatedAt time.Time `json:"tagnb_created_at" gorm:"column:tagnb_created_at;not null;autoCreateTime"`
	TagNBUpdatedAt time.Time `json:"tagnb_updated_at" gorm:"column:tagnb_updated_at;not null;autoUpdateTime"`
}

func (NonMonthlyBilling) TableName() string { return TableName }

func (m *NonMonthlyBilling) BeforeCreate(tx *gorm.DB) error {
	if m.TagNBID == uuid.Nil {
		m.TagNBID = uuid.New()
	}
	return nil
}

func (m NonMonthlyBilling) Meta() kinds.VersionMeta { return m.VersionMeta }
