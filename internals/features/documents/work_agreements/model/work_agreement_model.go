// file: internals/features/documents/work_agreements/model/work_agreement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
)

const (
	TableName = "surat_perjanjian_kerja"
	Prefix    = "spk_"
)

// Surat Perjanjian Kerja (work agreement)
type WorkAgreement struct {
	SPKID uuid.UUID `json:"spk_id" gorm:"column:spk_id;type:uuid;primaryKey"`

	kinds.VersionMeta `gorm:"embedded;embeddedPrefix:spk_"`

	SPKClientID            uuid.UUID       `json:"spk_client_id"            gorm:"column:spk_client_id;type:uuid;not null;index"`
	SPKDocumentDescription string          `json:"spk_document_description" gorm:"column:spk_document_description;type:text;not null"`
	SPKStartDate           time.Time       `json:"spk_start_date"           gorm:"column:spk_start_date;type:date;not null"`
	SPKEndDate             *time.Time      `json:"spk_end_date,omitempty"   gorm:"column:spk_end_date;type:date"`
	SPKProjectFee          decimal.Decimal `json:"spk_project_fee"          gorm:"column:spk_project_fee;type:numeric(19,4);not null"`
	SPKPaymentInstallment  int             `json:"spk_payment_installment"  gorm:"column:spk_payment_installment;not null"`
	SPKIsIncludeVAT        bool            `json:"spk_is_include_vat"       gorm:"column:spk_is_include_vat;not null;default:false"`
	SPKBillingCadence      *string         `json:"spk_billing_cadence,omitempty" gorm:"column:spk_billing_cadence;type:varchar(20)"`

	SPKCreatedAt time.Time `json:"spk_created_at" gorm:"column:spk_created_at;not null;autoCreateTime"`
	SPKUpdatedAt time.Time `json:"spk_updated_at" gorm:"column:spk_updated_at;not null;autoUpdateTime"`
}

func (WorkAgreement) TableName() string { return TableName }

func (m *WorkAgreement) BeforeCreate(tx *gorm.DB) error {
	if m.SPKID == uuid.Nil {
		m.SPKID = uuid.New()
	}
	return nil
}

func (m WorkAgreement) Meta() kinds.VersionMeta { return m.VersionMeta }
