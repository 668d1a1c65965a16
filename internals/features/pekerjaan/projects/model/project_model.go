// file: internals/features/pekerjaan/projects/model/project_model.go
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreationStatus string

const (
	CreationCreated    CreationStatus = "created"
	CreationInProgress CreationStatus = "in_progress"
	CreationCompleted  CreationStatus = "completed"
)

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressDone       ProgressStatus = "done"
)

const (
	DefaultCurrency = "IDR"
	TeamLeadKey     = "project_lead"
)

// Project (pekerjaan) dibuat dari SPK yang difinalisasi
type Project struct {
	PekerjaanID uuid.UUID `json:"pekerjaan_id" gorm:"column:pekerjaan_id;type:uuid;primaryKey"`

	PekerjaanProjectName        string    `json:"pekerjaan_project_name"        gorm:"column:pekerjaan_project_name;type:varchar(255);not null"`
	PekerjaanProjectDescription *string   `json:"pekerjaan_project_description" gorm:"column:pekerjaan_project_description;type:text"`
	PekerjaanSPKID              uuid.UUID `json:"pekerjaan_spk_id"              gorm:"column:pekerjaan_spk_id;type:uuid;not null;uniqueIndex"`
	PekerjaanBillingCadence     string    `json:"pekerjaan_billing_cadence"     gorm:"column:pekerjaan_billing_cadence;type:varchar(20);not null"`

	// {"project_lead": "<id>", "<posisi>": ["<id>", ...]}
	PekerjaanTeamMemberStructure datatypes.JSON `json:"pekerjaan_team_member_structure" gorm:"column:pekerjaan_team_member_structure;type:jsonb"`

	PekerjaanProjectFee    *decimal.Decimal `json:"pekerjaan_project_fee,omitempty"  gorm:"column:pekerjaan_project_fee;type:numeric(19,4)"`
	PekerjaanCurrency      string           `json:"pekerjaan_currency"               gorm:"column:pekerjaan_currency;type:varchar(10);not null;default:'IDR'"`
	PekerjaanIncludeVAT    bool             `json:"pekerjaan_include_vat"            gorm:"column:pekerjaan_include_vat;not null;default:false"`
	PekerjaanBankName      *string          `json:"pekerjaan_bank_name,omitempty"    gorm:"column:pekerjaan_bank_name;type:varchar(120)"`
	PekerjaanAccountNumber *string          `json:"pekerjaan_account_number,omitempty" gorm:"column:pekerjaan_account_number;type:varchar(60)"`
	PekerjaanAccountName   *string          `json:"pekerjaan_account_name,omitempty" gorm:"column:pekerjaan_account_name;type:varchar(160)"`

	PekerjaanCreationStatus CreationStatus `json:"pekerjaan_creation_status" gorm:"column:pekerjaan_creation_status;type:varchar(20);not null;default:'created'"`
	PekerjaanProgressStatus ProgressStatus `json:"pekerjaan_progress_status" gorm:"column:pekerjaan_progress_status;type:varchar(20);not null;default:'not_started'"`

	PekerjaanBaseInfoCompletion  int `json:"pekerjaan_base_info_completion"  gorm:"column:pekerjaan_base_info_completion;not null;default:0"`
	PekerjaanTeamCompletion      int `json:"pekerjaan_team_completion"       gorm:"column:pekerjaan_team_completion;not null;default:0"`
	PekerjaanMilestoneCompletion int `json:"pekerjaan_milestone_completion"  gorm:"column:pekerjaan_milestone_completion;not null;default:0"`
	PekerjaanPaymentCompletion   int `json:"pekerjaan_payment_completion"    gorm:"column:pekerjaan_payment_completion;not null;default:0"`
	PekerjaanCompletion          int `json:"pekerjaan_completion_percentage" gorm:"column:pekerjaan_completion_percentage;not null;default:0"`

	PekerjaanCreatedAt time.Time `json:"pekerjaan_created_at" gorm:"column:pekerjaan_created_at;not null;autoCreateTime"`
	PekerjaanUpdatedAt time.Time `json:"pekerjaan_updated_at" gorm:"column:pekerjaan_updated_at;not null;autoUpdateTime"`
}

func (Project) TableName() string { return "pekerjaan" }

func (m *Project) BeforeCreate(tx *gorm.DB) error {
	if m.PekerjaanID == uuid.Nil {
		m.PekerjaanID = uuid.New()
	}
	if strings.TrimSpace(m.PekerjaanCurrency) == "" {
		m.PekerjaanCurrency = DefaultCurrency
	}
	if m.PekerjaanCreationStatus == "" {
		m.PekerjaanCreationStatus = CreationCreated
	}
	if m.PekerjaanProgressStatus == "" {
		m.PekerjaanProgressStatus = ProgressNotStarted
	}
	if len(m.PekerjaanTeamMemberStructure) == 0 {
		m.PekerjaanTeamMemberStructure = datatypes.JSON("{}")
	}
	return nil
}

// Team mendekode struktur tim; JSON rusak dianggap kosong
func (m *Project) Team() map[string]any {
	out := map[string]any{}
	if len(m.PekerjaanTeamMemberStructure) == 0 {
		return out
	}
	if err := json.Unmarshal(m.PekerjaanTeamMemberStructure, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func (m *Project) Description() string {
	if m.PekerjaanProjectDescription == nil {
		return ""
	}
	return *m.PekerjaanProjectDescription
}
