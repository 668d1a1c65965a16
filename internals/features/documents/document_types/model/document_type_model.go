// file: internals/features/documents/document_types/model/document_type_model.go
package model

import (
	"strings"
	"time"
)

// HandlerKey: diskriminator handler per jenis dokumen
type HandlerKey string

const (
	HandlerOfferingLetter    HandlerKey = "offering_letter"
	HandlerWorkAgreement     HandlerKey = "work_agreement"
	HandlerNonMonthlyBilling HandlerKey = "non_monthly_billing"
)

func (k HandlerKey) Valid() bool {
	switch k {
	case HandlerOfferingLetter, HandlerWorkAgreement, HandlerNonMonthlyBilling:
		return true
	}
	return false
}

type DocumentType struct {
	DocumentTypeID        uint        `json:"document_type_id"         gorm:"column:document_type_id;primaryKey;autoIncrement"`
	DocumentTypeName      string      `json:"document_type_name"       gorm:"column:document_type_name;type:varchar(150);not null;uniqueIndex"`
	DocumentTypeShorthand string      `json:"document_type_shorthand"  gorm:"column:document_type_shorthand;type:varchar(20);not null;uniqueIndex"`
	DocumentTypeHandler   *HandlerKey `json:"document_type_handler,omitempty" gorm:"column:document_type_handler;type:varchar(40)"`

	DocumentTypeCreatedAt time.Time `json:"document_type_created_at" gorm:"column:document_type_created_at;not null;autoCreateTime"`
	DocumentTypeUpdatedAt time.Time `json:"document_type_updated_at" gorm:"column:document_type_updated_at;not null;autoUpdateTime"`
}

func (DocumentType) TableName() string { return "document_type" }

// ResolvedHandler: kolom diskriminator, atau alias shorthand lama bila kosong
func (t DocumentType) ResolvedHandler() (HandlerKey, bool) {
	if t.DocumentTypeHandler != nil && t.DocumentTypeHandler.Valid() {
		return *t.DocumentTypeHandler, true
	}
	switch strings.ToUpper(strings.TrimSpace(t.DocumentTypeShorthand)) {
	case "SP", "PWN":
		return HandlerOfferingLetter, true
	case "SPK":
		return HandlerWorkAgreement, true
	case "TAGNB":
		return HandlerNonMonthlyBilling, true
	}
	return "", false
}
