// file: internals/features/documents/document_types/dto/document_type_dto.go
package dto

import (
	"strings"

	"bantal_backend/internals/features/documents/document_types/model"
)

type CreateDocumentTypeRequest struct {
	DocumentTypeName      string  `json:"document_type_name"      validate:"required,max=150"`
	DocumentTypeShorthand string  `json:"document_type_shorthand" validate:"required,max=20"`
	DocumentTypeHandler   *string `json:"document_type_handler"   validate:"omitempty,oneof=offering_letter work_agreement non_monthly_billing"`
}

func (r *CreateDocumentTypeRequest) Normalize() {
	r.DocumentTypeName = strings.TrimSpace(r.DocumentTypeName)
	r.DocumentTypeShorthand = strings.TrimSpace(r.DocumentTypeShorthand)
	if r.DocumentTypeHandler != nil {
		v := strings.ToLower(strings.TrimSpace(*r.DocumentTypeHandler))
		if v == "" {
			r.DocumentTypeHandler = nil
		} else {
			r.DocumentTypeHandler = &v
		}
	}
}

func (r CreateDocumentTypeRequest) HandlerKey() *model.HandlerKey {
	if r.DocumentTypeHandler == nil {
		return nil
	}
	k := model.HandlerKey(*r.DocumentTypeHandler)
	return &k
}

type DocumentTypeResponse struct {
	model.DocumentType
	ResolvedHandler string `json:"resolved_handler,omitempty"`
}

func FromModel(m model.DocumentType) DocumentTypeResponse {
	out := DocumentTypeResponse{DocumentType: m}
	if k, ok := m.ResolvedHandler(); ok {
		out.ResolvedHandler = string(k)
	}
	return out
}

func FromModels(rows []model.DocumentType) []DocumentTypeResponse {
	out := make([]DocumentTypeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
