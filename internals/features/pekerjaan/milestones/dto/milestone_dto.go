// file: internals/features/pekerjaan/milestones/dto/milestone_dto.go
package dto

import (
	"strings"
	"time"

	"bantal_backend/internals/features/pekerjaan/milestones/model"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/helpers/dbtime"
)

type CreateMilestoneRequest struct {
	Name                 string  `json:"name"                  validate:"required,max=255"`
	Description          string  `json:"description"`
	DueDate              *string `json:"due_date"`
	Status               string  `json:"status"                validate:"omitempty,oneof=pending in_progress completed cancelled"`
	CompletionPercentage *int    `json:"completion_percentage"`
	Priority             string  `json:"priority"              validate:"omitempty,oneof=low medium high critical"`
	OrderIndex           *int    `json:"order_index"`
}

func (r *CreateMilestoneRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
}

func parseDue(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil, helper.Validation("due_date", "Due date tidak valid: %s", *s)
	}
	return &t, nil
}

func (r CreateMilestoneRequest) ToModel() (model.Milestone, error) {
	due, err := parseDue(r.DueDate)
	if err != nil {
		return model.Milestone{}, err
	}
	m := model.Milestone{
		MilestoneName:        r.Name,
		MilestoneDescription: r.Description,
		MilestoneDueDate:     due,
		MilestoneStatus:      model.Status(r.Status),
		MilestonePriority:    model.Priority(r.Priority),
	}
	if r.CompletionPercentage != nil {
		m.MilestoneCompletion = model.ClampCompletion(*r.CompletionPercentage)
	}
	if r.OrderIndex != nil {
		m.MilestoneOrderIndex = *r.OrderIndex
	}
	return m, nil
}

// UpdateMilestoneRequest: partial, hanya field yang dikirim
type UpdateMilestoneRequest struct {
	Name                 *string `json:"name"                  validate:"omitempty,max=255"`
	Description          *string `json:"description"`
	DueDate              *string `json:"due_date"`
	Status               *string `json:"status"                validate:"omitempty,oneof=pending in_progress completed cancelled"`
	CompletionPercentage *int    `json:"completion_percentage"`
	Priority             *string `json:"priority"              validate:"omitempty,oneof=low medium high critical"`
	OrderIndex           *int    `json:"order_index"`
}

func (r *UpdateMilestoneRequest) Normalize() {
	trim := func(p *string, lower bool) {
		if p == nil {
			return
		}
		*p = strings.TrimSpace(*p)
		if lower {
			*p = strings.ToLower(*p)
		}
	}
	trim(r.Name, false)
	trim(r.Description, false)
	trim(r.Status, true)
	trim(r.Priority, true)
}

func (r UpdateMilestoneRequest) ToUpdates() (map[string]any, error) {
	up := map[string]any{}
	if r.Name != nil {
		if *r.Name == "" {
			return nil, helper.Validation("name", "Milestone name cannot be empty")
		}
		up["milestone_name"] = *r.Name
	}
	if r.Description != nil {
		up["milestone_description"] = *r.Description
	}
	if r.DueDate != nil {
		due, err := parseDue(r.DueDate)
		if err != nil {
			return nil, err
		}
		up["milestone_due_date"] = due
	}
	if r.Status != nil && *r.Status != "" {
		up["milestone_status"] = *r.Status
	}
	if r.CompletionPercentage != nil {
		up["milestone_completion_percentage"] = model.ClampCompletion(*r.CompletionPercentage)
	}
	if r.Priority != nil && *r.Priority != "" {
		up["milestone_priority"] = *r.Priority
	}
	if r.OrderIndex != nil {
		up["milestone_order_index"] = *r.OrderIndex
	}
	return up, nil
}
