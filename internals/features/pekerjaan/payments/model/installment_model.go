// file: internals/features/pekerjaan/payments/model/installment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TriggerType string

const (
	TriggerMilestone TriggerType = "milestone"
	TriggerEvent     TriggerType = "event"
	TriggerDate      TriggerType = "date"
	TriggerManual    TriggerType = "manual"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerMilestone, TriggerEvent, TriggerDate, TriggerManual:
		return true
	}
	return false
}

// satu-satunya event yang didukung
const EventDocumentSubmission = "document_submission"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDue       Status = "due"
	StatusCleared   Status = "cleared"
	StatusRequested Status = "requested"
	StatusPaid      Status = "paid"
	StatusIssue     Status = "issue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDue, StatusCleared, StatusRequested, StatusPaid, StatusIssue:
		return true
	}
	return false
}

type Installment struct {
	InstallmentID          uuid.UUID       `json:"installment_id"           gorm:"column:installment_id;type:uuid;primaryKey"`
	InstallmentPekerjaanID uuid.UUID       `json:"installment_pekerjaan_id" gorm:"column:installment_pekerjaan_id;type:uuid;not null;index"`
	InstallmentNumber      int             `json:"installment_number"       gorm:"column:installment_number;not null"`
	InstallmentAmount      decimal.Decimal `json:"installment_amount"       gorm:"column:installment_amount;type:numeric(19,4);not null"`
	InstallmentPercentage  decimal.Decimal `json:"installment_percentage"   gorm:"column:installment_percentage;type:numeric(5,2);not null"`
	InstallmentTriggerType TriggerType     `json:"installment_trigger_type" gorm:"column:installment_trigger_type;type:varchar(20);not null"`
	InstallmentTriggerValue *string        `json:"installment_trigger_value,omitempty" gorm:"column:installment_trigger_value;type:varchar(255)"`
	InstallmentMilestoneID *uuid.UUID      `json:"installment_milestone_id,omitempty"  gorm:"column:installment_milestone_id;type:uuid"`
	InstallmentDescription string          `json:"installment_description"  gorm:"column:installment_description;type:text;not null"`
	InstallmentStatus      Status          `json:"installment_status"       gorm:"column:installment_status;type:varchar(20);not null;default:'pending';index"`
	InstallmentNotes       *string         `json:"installment_notes,omitempty"    gorm:"column:installment_notes;type:text"`
	InstallmentDueDate     *time.Time      `json:"installment_due_date,omitempty" gorm:"column:installment_due_date;type:date;index"`

	InstallmentCreatedAt time.Time `json:"installment_created_at" gorm:"column:installment_created_at;not null;autoCreateTime"`
	InstallmentUpdatedAt time.Time `json:"installment_updated_at" gorm:"column:installment_updated_at;not null;autoUpdateTime"`
}

func (Installment) TableName() string { return "payment_installment" }

func (m *Installment) BeforeCreate(tx *gorm.DB) error {
	if m.InstallmentID == uuid.Nil {
		m.InstallmentID = uuid.New()
	}
	if m.InstallmentStatus == "" {
		m.InstallmentStatus = StatusPending
	}
	return nil
}

func ScopeProject(projectID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("installment_pekerjaan_id = ?", projectID)
	}
}
