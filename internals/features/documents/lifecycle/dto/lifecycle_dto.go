// file: internals/features/documents/lifecycle/dto/lifecycle_dto.go
package dto

import (
	"github.com/google/uuid"

	"bantal_backend/internals/features/documents/kinds"
	mdDTO "bantal_backend/internals/features/documents/master_documents/dto"
)

// FileInput: isi file yang sudah dibaca dari multipart
type FileInput struct {
	Filename string
	Content  []byte
	MimeType string
}

type CreateInput struct {
	Identifier string
	Payload    []byte
	CreatedBy  *uuid.UUID
	File       *FileInput
}

type FinalizeInput struct {
	Identifier       string
	DocumentID       uuid.UUID
	Summary          string
	PhysicalDelivery bool
	Files            []FileInput
	FinalizedBy      *uuid.UUID
}

type ReviseInput struct {
	DocumentID uuid.UUID
	Payload    []byte
	RevisedBy  *uuid.UUID
	File       *FileInput
}

type DocumentDetail struct {
	Document mdDTO.MasterDocumentResponse `json:"document"`
	Kind     kinds.Kind                   `json:"kind"`
	Details  kinds.Row                    `json:"details"`
}

type FinalizeResponse struct {
	Message     string     `json:"message"`
	DocumentID  uuid.UUID  `json:"document_id"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Cadence     string     `json:"billing_cadence,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}
