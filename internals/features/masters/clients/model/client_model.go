// file: internals/features/masters/clients/model/client_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "Active"
	ClientStatusBlacklist ClientStatus = "blacklist"
	ClientStatusCautious  ClientStatus = "cautious"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusBlacklist, ClientStatusCautious:
		return true
	}
	return false
}

/* =========================
   Model: client_type
   ========================= */

type ClientType struct {
	ClientTypeID          uint    `json:"client_type_id"                    gorm:"column:client_type_id;primaryKey;autoIncrement"`
	ClientTypeName        string  `json:"client_type_name"                  gorm:"column:client_type_name;type:varchar(100);not null;uniqueIndex"`
	ClientTypeDescription *string `json:"client_type_description,omitempty" gorm:"column:client_type_description;type:text"`

	ClientTypeCreatedAt time.Time `json:"client_type_created_at" gorm:"column:client_type_created_at;not null;autoCreateTime"`
	ClientTypeUpdatedAt time.Time `json:"client_type_updated_at" gorm:"column:client_type_updated_at;not null;autoUpdateTime"`
}

func (ClientType) TableName() string { return "client_type" }

/* =========================
   Model: master_client_list
   ========================= */

type Client struct {
	ClientID uuid.UUID `json:"client_id" gorm:"column:client_id;type:uuid;primaryKey"`

	ClientName   string  `json:"client_name"            gorm:"column:client_name;type:varchar(255);not null"`
	ClientGroup  *string `json:"client_group,omitempty" gorm:"column:client_group;type:varchar(255)"`
	ClientTypeID uint    `json:"client_type_id"         gorm:"column:client_type_id;not null;index"`
	ClientType   *ClientType `json:"client_type,omitempty" gorm:"foreignKey:ClientTypeID;references:ClientTypeID"`

	ClientContactName     string         `json:"client_contact_name"                gorm:"column:client_contact_name;type:varchar(255);not null"`
	ClientContactPosition *string        `json:"client_contact_position,omitempty"  gorm:"column:client_contact_position;type:varchar(255)"`
	ClientContactEmail    string         `json:"client_contact_email"               gorm:"column:client_contact_email;type:varchar(255);not null"`
	ClientContactPhone    string         `json:"client_contact_phone"               gorm:"column:client_contact_phone;type:varchar(50);not null"`
	ClientAltEmails       pq.StringArray `json:"client_alt_emails,omitempty"        gorm:"column:client_alt_emails;type:text[]"`

	ClientReferralFrom       *string      `json:"client_referral_from,omitempty"        gorm:"column:client_referral_from;type:varchar(255)"`
	ClientDateOfFirstProject *time.Time   `json:"client_date_of_first_project,omitempty" gorm:"column:client_date_of_first_project;type:date"`
	ClientStatus             ClientStatus `json:"client_status"                         gorm:"column:client_status;type:varchar(20);not null;default:'Active'"`
	ClientPriorityNumber     int          `json:"client_priority_number"                gorm:"column:client_priority_number;not null;default:1"`
	ClientIsWapu             bool         `json:"client_is_wapu"                        gorm:"column:client_is_wapu;not null;default:true"`

	ClientCreatedAt time.Time `json:"client_created_at" gorm:"column:client_created_at;not null;autoCreateTime"`
	ClientUpdatedAt time.Time `json:"client_updated_at" gorm:"column:client_updated_at;not null;autoUpdateTime"`
}

func (Client) TableName() string { return "master_client_list" }

func (m *Client) BeforeCreate(tx *gorm.DB) error {
	if m.ClientID == uuid.Nil {
		m.ClientID = uuid.New()
	}
	if m.ClientStatus == "" {
		m.ClientStatus = ClientStatusActive
	}
	return nil
}

func ScopeByStatus(status ClientStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_status = ?", status)
	}
}
