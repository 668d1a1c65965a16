// file: internals/features/pekerjaan/milestones/model/milestone_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Milestone struct {
	MilestoneID          uuid.UUID  `json:"milestone_id"           gorm:"column:milestone_id;type:uuid;primaryKey"`
	MilestonePekerjaanID uuid.UUID  `json:"milestone_pekerjaan_id" gorm:"column:milestone_pekerjaan_id;type:uuid;not null;index"`
	MilestoneName        string     `json:"milestone_name"         gorm:"column:milestone_name;type:varchar(255);not null"`
	MilestoneDescription string     `json:"milestone_description"  gorm:"column:milestone_description;type:text"`
	MilestoneDueDate     *time.Time `json:"milestone_due_date"     gorm:"column:milestone_due_date;type:date"`
	MilestoneStatus      Status     `json:"milestone_status"       gorm:"column:milestone_status;type:varchar(20);not null;default:'pending'"`
	MilestoneCompletion  int        `json:"milestone_completion_percentage" gorm:"column:milestone_completion_percentage;not null;default:0"`
	MilestonePriority    Priority   `json:"milestone_priority"     gorm:"column:milestone_priority;type:varchar(20);not null;default:'medium'"`
	MilestoneOrderIndex  int        `json:"milestone_order_index"  gorm:"column:milestone_order_index;not null;default:0"`

	MilestoneCreatedAt time.Time `json:"milestone_created_at" gorm:"column:milestone_created_at;not null;autoCreateTime"`
	MilestoneUpdatedAt time.Time `json:"milestone_updated_at" gorm:"column:milestone_updated_at;not null;autoUpdateTime"`
}

func (Milestone) TableName() string { return "project_milestone" }

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.MilestoneID == uuid.Nil {
		m.MilestoneID = uuid.New()
	}
	if m.MilestoneStatus == "" {
		m.MilestoneStatus = StatusPending
	}
	if m.MilestonePriority == "" {
		m.MilestonePriority = PriorityMedium
	}
	return nil
}

func ScopeProject(projectID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("milestone_pekerjaan_id = ?", projectID)
	}
}

func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order("milestone_order_index ASC").Order("milestone_created_at ASC")
}

// ClampCompletion: 0..100
func ClampCompletion(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
