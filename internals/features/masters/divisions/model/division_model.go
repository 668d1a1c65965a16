// file: internals/features/masters/divisions/model/division_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Division struct {
	DivisionID uuid.UUID `json:"division_id" gorm:"column:division_id;type:uuid;primaryKey"`

	DivisionCode        string  `json:"division_code"                  gorm:"column:division_code;type:varchar(30);not null;uniqueIndex"`
	DivisionName        string  `json:"division_name"                  gorm:"column:division_name;type:varchar(255);not null;uniqueIndex"`
	DivisionDescription *string `json:"division_description,omitempty" gorm:"column:division_description;type:text"`
	DivisionIsActive    bool    `json:"division_is_active"             gorm:"column:division_is_active;not null;default:true"`
	DivisionCreatedBy   *string `json:"division_created_by,omitempty"  gorm:"column:division_created_by;type:varchar(64)"`

	DivisionCreatedAt time.Time `json:"division_created_at" gorm:"column:division_created_at;not null;autoCreateTime"`
	DivisionUpdatedAt time.Time `json:"division_updated_at" gorm:"column:division_updated_at;not null;autoUpdateTime"`
}

func (Division) TableName() string { return "master_division_list" }

func (m *Division) BeforeCreate(tx *gorm.DB) error {
	if m.DivisionID == uuid.Nil {
		m.DivisionID = uuid.New()
	}
	return nil
}

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("division_is_active = ?", true)
}
