// file: internals/features/documents/offering_letters/model/offering_letter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
)

const (
	TableName = "surat_penawaran"
	Prefix    = "surat_penawaran_"
)

// Surat Penawaran (offering letter), satu baris per versi
type OfferingLetter struct {
	SuratPenawaranID uuid.UUID `json:"surat_penawaran_id" gorm:"column:surat_penawaran_id;type:uuid;primaryKey"`

	kinds.VersionMeta `gorm:"embedded;embeddedPrefix:surat_penawaran_"`

	SuratPenawaranClientID            uuid.UUID `json:"surat_penawaran_client_id"            gorm:"column:surat_penawaran_client_id;type:uuid;not null;index"`
	SuratPenawaranDocumentDescription string    `json:"surat_penawaran_document_description" gorm:"column:surat_penawaran_document_description;type:text;not null"`
	SuratPenawaranOfferedService      string    `json:"surat_penawaran_offered_service"      gorm:"column:surat_penawaran_offered_service;type:text;not null"`
	SuratPenawaranPersonInChargeID    uuid.UUID `json:"surat_penawaran_person_in_charge_id"  gorm:"column:surat_penawaran_person_in_charge_id;type:uuid;not null"`

	SuratPenawaranCreatedAt time.Time `json:"surat_penawaran_created_at" gorm:"column:surat_penawaran_created_at;not null;autoCreateTime"`
	SuratPenawaranUpdatedAt time.Time `json:"surat_penawaran_updated_at" gorm:"column:surat_penawaran_updated_at;not null;autoUpdateTime"`
}

func (OfferingLetter) TableName() string { return TableName }

func (m *OfferingLetter) BeforeCreate(tx *gorm.DB) error {
	if m.SuratPenawaranID == uuid.Nil {
		m.SuratPenawaranID = uuid.New()
	}
	return nil
}

func (m OfferingLetter) Meta() kinds.VersionMeta { return m.VersionMeta }
