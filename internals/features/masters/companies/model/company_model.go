// file: internals/features/masters/companies/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	CompanyID uuid.UUID `json:"company_id" gorm:"column:company_id;type:uuid;primaryKey"`

	CompanyCode        string  `json:"company_code"                  gorm:"column:company_code;type:varchar(30);not null;uniqueIndex"`
	CompanyName        string  `json:"company_name"                  gorm:"column:company_name;type:varchar(255);not null;uniqueIndex"`
	CompanyAddress     *string `json:"company_address,omitempty"     gorm:"column:company_address;type:text"`
	CompanyPhoneNumber *string `json:"company_phone_number,omitempty" gorm:"column:company_phone_number;type:varchar(50)"`
	CompanyEmail       *string `json:"company_email,omitempty"       gorm:"column:company_email;type:varchar(255)"`
	CompanyDescription *string `json:"company_description,omitempty" gorm:"column:company_description;type:text"`
	CompanyIsActive    bool    `json:"company_is_active"             gorm:"column:company_is_active;not null;default:true"`
	CompanyCreatedBy   *string `json:"company_created_by,omitempty"  gorm:"column:company_created_by;type:varchar(64)"`

	CompanyCreatedAt time.Time `json:"company_created_at" gorm:"column:company_created_at;not null;autoCreateTime"`
	CompanyUpdatedAt time.Time `json:"company_updated_at" gorm:"column:company_updated_at;not null;autoUpdateTime"`
}

func (Company) TableName() string { return "master_company_list" }

func (m *Company) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyID == uuid.Nil {
		m.CompanyID = uuid.New()
	}
	return nil
}

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("company_is_active = ?", true)
}
