// file: internals/features/identities/identity/dto/identity_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bantal_backend/internals/features/identities/identity/model"
)

// Klaim minimal yang dibutuhkan untuk sinkronisasi identity
type SSOClaims struct {
	Subject           string
	Email             string
	Name              string
	PreferredUsername string
}

type UpdateIdentityRequest struct {
	IdentityName       *string `json:"identity_name"       validate:"omitempty,min=1,max=255"`
	IdentityDepartment *string `json:"identity_department" validate:"omitempty,max=255"`
	IdentityJobTitle   *string `json:"identity_job_title"  validate:"omitempty,max=255"`
	IdentityRole       *string `json:"identity_role"       validate:"omitempty,oneof=admin manager user"`
	IdentityStatus     *string `json:"identity_status"     validate:"omitempty,oneof=active inactive pending"`
}

func (r *UpdateIdentityRequest) Normalize() {
	for _, pp := range []**string{&r.IdentityName, &r.IdentityDepartment, &r.IdentityJobTitle, &r.IdentityRole, &r.IdentityStatus} {
		if *pp == nil {
			continue
		}
		v := strings.TrimSpace(**pp)
		*pp = &v
	}
}

// Apply hanya menyentuh field yang dikirim
func (r UpdateIdentityRequest) Apply(m *model.Identity) {
	if r.IdentityName != nil {
		m.IdentityName = *r.IdentityName
	}
	if r.IdentityDepartment != nil {
		m.IdentityDepartment = nilIfEmpty(*r.IdentityDepartment)
	}
	if r.IdentityJobTitle != nil {
		m.IdentityJobTitle = nilIfEmpty(*r.IdentityJobTitle)
	}
	if r.IdentityRole != nil {
		m.IdentityRole = strings.ToLower(*r.IdentityRole)
	}
	if r.IdentityStatus != nil {
		m.IdentityStatus = model.IdentityStatus(strings.ToLower(*r.IdentityStatus))
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type IdentityResponse struct {
	IdentityID                uuid.UUID `json:"identity_id"`
	IdentityEmail             string    `json:"identity_email"`
	IdentityName              string    `json:"identity_name"`
	IdentityDepartment        *string   `json:"identity_department,omitempty"`
	IdentityJobTitle          *string   `json:"identity_job_title,omitempty"`
	IdentityPreferredUsername *string   `json:"identity_preferred_username,omitempty"`
	IdentityRole              string    `json:"identity_role"`
	IdentityStatus            string    `json:"identity_status"`
	IdentityIsActive          bool      `json:"identity_is_active"`
	IdentityUpdatedAt         time.Time `json:"identity_updated_at"`
}

func FromModel(m model.Identity) IdentityResponse {
	return IdentityResponse{
		IdentityID:                m.IdentityID,
		IdentityEmail:             m.IdentityEmail,
		IdentityName:              m.IdentityName,
		IdentityDepartment:        m.IdentityDepartment,
		IdentityJobTitle:          m.IdentityJobTitle,
		IdentityPreferredUsername: m.IdentityPreferredUsername,
		IdentityRole:              m.IdentityRole,
		IdentityStatus:            string(m.IdentityStatus),
		IdentityIsActive:          m.IdentityIsActive,
		IdentityUpdatedAt:         m.IdentityUpdatedAt,
	}
}

func FromModels(rows []model.Identity) []IdentityResponse {
	out := make([]IdentityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
