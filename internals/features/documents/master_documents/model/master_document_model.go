// file: internals/features/documents/master_documents/model/master_document_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	identityModel "bantal_backend/internals/features/identities/identity/model"
	companyModel "bantal_backend/internals/features/masters/companies/model"
	divisionModel "bantal_backend/internals/features/masters/divisions/model"
)

type MasterDocument struct {
	MasterDocumentID uuid.UUID `json:"master_document_id" gorm:"column:master_document_id;type:uuid;primaryKey"`

	MasterDocumentNumber         string    `json:"master_document_number"                    gorm:"column:master_document_number;type:varchar(100);not null;uniqueIndex"`
	MasterDocumentExternalNumber *string   `json:"master_document_external_number,omitempty" gorm:"column:master_document_external_number;type:varchar(100);uniqueIndex"`
	MasterDocumentName           string    `json:"master_document_name"                      gorm:"column:master_document_name;type:varchar(255);not null"`
	MasterDocumentLegalDate      time.Time `json:"master_document_legal_date"                gorm:"column:master_document_legal_date;type:date;not null;index"`
	MasterDocumentIndexNumber    int       `json:"master_document_index_number"              gorm:"column:master_document_index_number;not null"`

	MasterDocumentStatus      constants.DocumentStatus `json:"master_document_status"                  gorm:"column:master_document_status;type:varchar(20);not null;default:'DRAFT';index"`
	MasterDocumentBlobPointer *string                  `json:"master_document_blob_pointer,omitempty"  gorm:"column:master_document_blob_pointer;type:varchar(64)"`
	MasterDocumentIsActive    bool                     `json:"master_document_is_active"               gorm:"column:master_document_is_active;not null;default:true"`

	MasterDocumentTypeID     uint       `json:"master_document_type_id"               gorm:"column:master_document_type_id;not null;index"`
	MasterDocumentDivisionID *uuid.UUID `json:"master_document_division_id,omitempty" gorm:"column:master_document_division_id;type:uuid"`
	MasterDocumentCompanyID  *uuid.UUID `json:"master_document_company_id,omitempty"  gorm:"column:master_document_company_id;type:uuid;index"`
	MasterDocumentCreatedBy  *uuid.UUID `json:"master_document_created_by,omitempty"  gorm:"column:master_document_created_by;type:uuid"`

	// diisi saat finalisasi
	MasterDocumentFinalizationSummary *string        `json:"master_document_finalization_summary,omitempty" gorm:"column:master_document_finalization_summary;type:text"`
	MasterDocumentPhysicalDelivery    bool           `json:"master_document_physical_delivery"              gorm:"column:master_document_physical_delivery;not null;default:false"`
	MasterDocumentAttachments         datatypes.JSON `json:"master_document_attachments,omitempty"          gorm:"column:master_document_attachments;type:jsonb"`
	MasterDocumentFinalizedAt         *time.Time     `json:"master_document_finalized_at,omitempty"         gorm:"column:master_document_finalized_at"`

	MasterDocumentCreatedAt time.Time `json:"master_document_created_at" gorm:"column:master_document_created_at;not null;autoCreateTime"`
	MasterDocumentUpdatedAt time.Time `json:"master_document_updated_at" gorm:"column:master_document_updated_at;not null;autoUpdateTime"`

	DocumentType *docTypeModel.DocumentType `json:"document_type,omitempty" gorm:"foreignKey:MasterDocumentTypeID;references:DocumentTypeID"`
	Creator      *identityModel.Identity    `json:"creator,omitempty"       gorm:"foreignKey:MasterDocumentCreatedBy;references:IdentityID"`
	Division     *divisionModel.Division    `json:"division,omitempty"      gorm:"foreignKey:MasterDocumentDivisionID;references:DivisionID"`
	Company      *companyModel.Company      `json:"company,omitempty"       gorm:"foreignKey:MasterDocumentCompanyID;references:CompanyID"`
}

func (MasterDocument) TableName() string { return "master_document_list" }

func (m *MasterDocument) BeforeCreate(tx *gorm.DB) error {
	if m.MasterDocumentID == uuid.Nil {
		m.MasterDocumentID = uuid.New()
	}
	if m.MasterDocumentStatus == "" {
		m.MasterDocumentStatus = constants.DocumentStatusDraft
	}
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("master_document_is_active = ?", true)
}

func ScopeByType(typeID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("master_document_type_id = ?", typeID)
	}
}

// ScopeLegalPeriod: filter bulan/tahun tanggal legal dengan rentang [from, to)
func ScopeLegalPeriod(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("master_document_legal_date >= ? AND master_document_legal_date < ?", from, to)
	}
}

func WithRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("DocumentType").Preload("Creator").Preload("Division").Preload("Company")
}

// AttachmentPointers: pointer blob lampiran finalisasi
func (m *MasterDocument) AttachmentPointers() []string {
	if len(m.MasterDocumentAttachments) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(m.MasterDocumentAttachments, &out); err != nil {
		return nil
	}
	return out
}
