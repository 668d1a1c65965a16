// file: internals/features/documents/master_documents/dto/master_document_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bantal_backend/internals/constants"
	"bantal_backend/internals/features/documents/master_documents/model"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/helpers/dbtime"
)

// MasterFieldsRequest: field master di body create (body datar, sama dengan field varian)
type MasterFieldsRequest struct {
	DocumentNumber         string     `json:"document_number"`
	DocumentExternalNumber *string    `json:"document_external_number"`
	DocumentName           string     `json:"document_name"`
	DocumentLegalDate      string     `json:"document_legal_date"`
	IndexNumber            *int       `json:"index_number"`
	DivisionID             *uuid.UUID `json:"division_id"`
	CompanyID              *uuid.UUID `json:"company_id"`
}

// CreateFields: hasil validasi MasterFieldsRequest
type CreateFields struct {
	DocumentNumber string
	ExternalNumber *string
	Name           string
	LegalDate      time.Time
	IndexNumber    *int
	CreatedBy      *uuid.UUID
	DivisionID     *uuid.UUID
	CompanyID      *uuid.UUID
}

func (r *MasterFieldsRequest) Normalize() {
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.DocumentName = strings.TrimSpace(r.DocumentName)
	r.DocumentLegalDate = strings.TrimSpace(r.DocumentLegalDate)
	if r.DocumentExternalNumber != nil {
		v := strings.TrimSpace(*r.DocumentExternalNumber)
		if v == "" {
			r.DocumentExternalNumber = nil
		} else {
			r.DocumentExternalNumber = &v
		}
	}
	if r.DivisionID != nil && *r.DivisionID == uuid.Nil {
		r.DivisionID = nil
	}
	if r.CompanyID != nil && *r.CompanyID == uuid.Nil {
		r.CompanyID = nil
	}
}

func (r MasterFieldsRequest) ToFields(createdBy *uuid.UUID) (CreateFields, error) {
	r.Normalize()
	if r.DocumentNumber == "" {
		return CreateFields{}, helper.Validation("document_number", "Document number is required")
	}
	if r.DocumentName == "" {
		return CreateFields{}, helper.Validation("document_name", "Document name is required")
	}
	if r.DocumentLegalDate == "" {
		return CreateFields{}, helper.Validation("document_legal_date", "Document legal date is required")
	}
	legal, err := dbtime.ParseDate(r.DocumentLegalDate)
	if err != nil {
		return CreateFields{}, helper.Validation("document_legal_date", "Tanggal legal tidak valid: %s", r.DocumentLegalDate)
	}
	if r.IndexNumber != nil && *r.IndexNumber <= 0 {
		return CreateFields{}, helper.Validation("index_number", "index_number harus lebih dari 0")
	}
	return CreateFields{
		DocumentNumber: r.DocumentNumber,
		ExternalNumber: r.DocumentExternalNumber,
		Name:           r.DocumentName,
		LegalDate:      legal,
		IndexNumber:    r.IndexNumber,
		CreatedBy:      createdBy,
		DivisionID:     r.DivisionID,
		CompanyID:      r.CompanyID,
	}, nil
}

/* =========================
   Query & patch
   ========================= */

type ListFilter struct {
	TypeID     *uint
	Status     *constants.DocumentStatus
	CompanyID  *uuid.UUID
	DivisionID *uuid.UUID
	Search     string
	OnlyActive bool
	Offset     int
	Limit      int
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

/* =========================
   Response
   ========================= */

type MasterDocumentResponse struct {
	ID               uuid.UUID                `json:"id"`
	DocumentNumber   string                   `json:"document_number"`
	ExternalNumber   *string                  `json:"document_external_number,omitempty"`
	Name             string                   `json:"document_name"`
	LegalDate        string                   `json:"document_legal_date"`
	IndexNumber      int                      `json:"index_number"`
	Status           constants.DocumentStatus `json:"status"`
	BlobPointer      *string                  `json:"blob_pointer,omitempty"`
	IsActive         bool                     `json:"is_active"`
	TypeID           uint                     `json:"document_type_id"`
	TypeName         string                   `json:"document_type_name,omitempty"`
	TypeShorthand    string                   `json:"document_type_shorthand,omitempty"`
	DivisionID       *uuid.UUID               `json:"division_id,omitempty"`
	CompanyID        *uuid.UUID               `json:"company_id,omitempty"`
	CreatedBy        *uuid.UUID               `json:"created_by,omitempty"`
	CreatorName      string                   `json:"created_by_name,omitempty"`
	FinalizedAt      *time.Time               `json:"finalized_at,omitempty"`
	Summary          *string                  `json:"finalization_summary,omitempty"`
	PhysicalDelivery bool                     `json:"physical_delivery"`
	Attachments      []string                 `json:"attachments,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromModel(m *model.MasterDocument) MasterDocumentResponse {
	out := MasterDocumentResponse{
		ID:               m.MasterDocumentID,
		DocumentNumber:   m.MasterDocumentNumber,
		ExternalNumber:   m.MasterDocumentExternalNumber,
		Name:             m.MasterDocumentName,
		LegalDate:        m.MasterDocumentLegalDate.Format("2006-01-02"),
		IndexNumber:      m.MasterDocumentIndexNumber,
		Status:           m.MasterDocumentStatus,
		BlobPointer:      m.MasterDocumentBlobPointer,
		IsActive:         m.MasterDocumentIsActive,
		TypeID:           m.MasterDocumentTypeID,
		DivisionID:       m.MasterDocumentDivisionID,
		CompanyID:        m.MasterDocumentCompanyID,
		CreatedBy:        m.MasterDocumentCreatedBy,
		FinalizedAt:      m.MasterDocumentFinalizedAt,
		Summary:          m.MasterDocumentFinalizationSummary,
		PhysicalDelivery: m.MasterDocumentPhysicalDelivery,
		Attachments:      m.AttachmentPointers(),
		CreatedAt:        m.MasterDocumentCreatedAt,
		UpdatedAt:        m.MasterDocumentUpdatedAt,
	}
	if m.DocumentType != nil {
		out.TypeName = m.DocumentType.DocumentTypeName
		out.TypeShorthand = m.DocumentType.DocumentTypeShorthand
	}
	if m.Creator != nil {
		out.CreatorName = m.Creator.IdentityName
	}
	return out
}

func FromModels(rows []model.MasterDocument) []MasterDocumentResponse {
	out := make([]MasterDocumentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
