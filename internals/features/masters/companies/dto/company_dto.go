// file: internals/features/masters/companies/dto/company_dto.go
package dto

import (
	"strings"

	"bantal_backend/internals/features/masters/companies/model"
)

type CreateCompanyRequest struct {
	CompanyCode        string  `json:"company_code"         validate:"required,max=30"`
	CompanyName        string  `json:"company_name"         validate:"required,max=255"`
	CompanyAddress     *string `json:"company_address"`
	CompanyPhoneNumber *string `json:"company_phone_number" validate:"omitempty,max=50"`
	CompanyEmail       *string `json:"company_email"        validate:"omitempty,email"`
	CompanyDescription *string `json:"company_description"`
	CompanyIsActive    *bool   `json:"company_is_active"`
}

func (r *CreateCompanyRequest) Normalize() {
	r.CompanyCode = strings.ToUpper(strings.TrimSpace(r.CompanyCode))
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	trimPtr(&r.CompanyAddress)
	trimPtr(&r.CompanyPhoneNumber)
	trimPtr(&r.CompanyEmail)
	trimPtr(&r.CompanyDescription)
}

func (r CreateCompanyRequest) ToModel(createdBy *string) model.Company {
	active := true
	if r.CompanyIsActive != nil {
		active = *r.CompanyIsActive
	}
	return model.Company{
		CompanyCode:        r.CompanyCode,
		CompanyName:        r.CompanyName,
		CompanyAddress:     r.CompanyAddress,
		CompanyPhoneNumber: r.CompanyPhoneNumber,
		CompanyEmail:       r.CompanyEmail,
		CompanyDescription: r.CompanyDescription,
		CompanyIsActive:    active,
		CompanyCreatedBy:   createdBy,
	}
}

type UpdateCompanyRequest struct {
	CompanyCode        *string `json:"company_code"         validate:"omitempty,min=1,max=30"`
	CompanyName        *string `json:"company_name"         validate:"omitempty,min=1,max=255"`
	CompanyAddress     *string `json:"company_address"`
	CompanyPhoneNumber *string `json:"company_phone_number" validate:"omitempty,max=50"`
	CompanyEmail       *string `json:"company_email"        validate:"omitempty,email"`
	CompanyDescription *string `json:"company_description"`
	CompanyIsActive    *bool   `json:"company_is_active"`
}

func (r *UpdateCompanyRequest) Normalize() {
	if r.CompanyCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.CompanyCode))
		r.CompanyCode = &v
	}
	if r.CompanyName != nil {
		v := strings.TrimSpace(*r.CompanyName)
		r.CompanyName = &v
	}
}

// Map kolom yang berubah (untuk Updates)
func (r UpdateCompanyRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.CompanyCode != nil {
		up["company_code"] = *r.CompanyCode
	}
	if r.CompanyName != nil {
		up["company_name"] = *r.CompanyName
	}
	if r.CompanyAddress != nil {
		up["company_address"] = *r.CompanyAddress
	}
	if r.CompanyPhoneNumber != nil {
		up["company_phone_number"] = *r.CompanyPhoneNumber
	}
	if r.CompanyEmail != nil {
		up["company_email"] = *r.CompanyEmail
	}
	if r.CompanyDescription != nil {
		up["company_description"] = *r.CompanyDescription
	}
	if r.CompanyIsActive != nil {
		up["company_is_active"] = *r.CompanyIsActive
	}
	return up
}

func trimPtr(pp **string) {
	if *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
