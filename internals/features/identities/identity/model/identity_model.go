// file: internals/features/identities/identity/model/identity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdentityStatus string

const (
	IdentityStatusActive   IdentityStatus = "active"
	IdentityStatusInactive IdentityStatus = "inactive"
	IdentityStatusPending  IdentityStatus = "pending"
)

type Identity struct {
	IdentityID uuid.UUID `json:"identity_id" gorm:"column:identity_id;type:uuid;primaryKey"`

	// Object ID dari directory perusahaan (import)
	IdentityExternalID string `json:"identity_external_id" gorm:"column:identity_external_id;type:varchar(255);not null;uniqueIndex"`
	// subject (sub) token SSO; diisi/di-sync saat login
	IdentityKeycloakID *string `json:"identity_keycloak_id,omitempty" gorm:"column:identity_keycloak_id;type:varchar(255);uniqueIndex"`

	IdentityEmail             string  `json:"identity_email"                        gorm:"column:identity_email;type:varchar(255);not null;uniqueIndex"`
	IdentityName              string  `json:"identity_name"                         gorm:"column:identity_name;type:varchar(255);not null"`
	IdentityDepartment        *string `json:"identity_department,omitempty"         gorm:"column:identity_department;type:varchar(255)"`
	IdentityJobTitle          *string `json:"identity_job_title,omitempty"          gorm:"column:identity_job_title;type:varchar(255)"`
	IdentityPreferredUsername *string `json:"identity_preferred_username,omitempty" gorm:"column:identity_preferred_username;type:varchar(255)"`

	IdentityIsActive bool           `json:"identity_is_active" gorm:"column:identity_is_active;not null;default:true"`
	IdentityStatus   IdentityStatus `json:"identity_status"    gorm:"column:identity_status;type:varchar(20);not null;default:'active'"`
	IdentityRole     string         `json:"identity_role"      gorm:"column:identity_role;type:varchar(20);not null;default:'user'"`

	IdentityCreatedAt time.Time `json:"identity_created_at" gorm:"column:identity_created_at;not null;autoCreateTime"`
	IdentityUpdatedAt time.Time `json:"identity_updated_at" gorm:"column:identity_updated_at;not null;autoUpdateTime"`
}

func (Identity) TableName() string { return "identity" }

func (m *Identity) BeforeCreate(tx *gorm.DB) error {
	if m.IdentityID == uuid.Nil {
		m.IdentityID = uuid.New()
	}
	if m.IdentityStatus == "" {
		m.IdentityStatus = IdentityStatusActive
	}
	if m.IdentityRole == "" {
		m.IdentityRole = "user"
	}
	return nil
}
