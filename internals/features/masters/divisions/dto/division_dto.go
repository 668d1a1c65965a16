// file: internals/features/masters/divisions/dto/division_dto.go
package dto

import "strings"

type DivisionRequest struct {
	DivisionCode        string  `json:"division_code"        validate:"required,max=30"`
	DivisionName        string  `json:"division_name"        validate:"required,max=255"`
	DivisionDescription *string `json:"division_description"`
	DivisionIsActive    *bool   `json:"division_is_active"`
}

func (r *DivisionRequest) Normalize() {
	r.DivisionCode = strings.ToUpper(strings.TrimSpace(r.DivisionCode))
	r.DivisionName = strings.TrimSpace(r.DivisionName)
	if r.DivisionDescription != nil {
		v := strings.TrimSpace(*r.DivisionDescription)
		if v == "" {
			r.DivisionDescription = nil
		} else {
			r.DivisionDescription = &v
		}
	}
}
