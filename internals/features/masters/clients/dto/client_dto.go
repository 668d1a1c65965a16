// file: internals/features/masters/clients/dto/client_dto.go
package dto

import (
	"strings"

	"github.com/lib/pq"

	"bantal_backend/internals/features/masters/clients/model"
	"bantal_backend/internals/helpers/dbtime"
)

type ClientRequest struct {
	ClientName   string  `json:"client_name"    validate:"required,max=255"`
	ClientGroup  *string `json:"client_group"   validate:"omitempty,max=255"`
	ClientTypeID uint    `json:"client_type_id" validate:"required"`

	ClientContactName     string   `json:"client_contact_name"     validate:"required,max=255"`
	ClientContactPosition *string  `json:"client_contact_position" validate:"omitempty,max=255"`
	ClientContactEmail    string   `json:"client_contact_email"    validate:"required,email"`
	ClientContactPhone    string   `json:"client_contact_phone"    validate:"required,max=50"`
	ClientAltEmails       []string `json:"client_alt_emails"       validate:"omitempty,dive,email"`

	ClientReferralFrom       *string `json:"client_referral_from"`
	ClientDateOfFirstProject *string `json:"client_date_of_first_project"`
	ClientStatus             *string `json:"client_status"          validate:"omitempty,oneof=Active blacklist cautious"`
	ClientPriorityNumber     *int    `json:"client_priority_number" validate:"omitempty,min=1"`
	ClientIsWapu             *bool   `json:"client_is_wapu"`
}

func (r *ClientRequest) Normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientContactName = strings.TrimSpace(r.ClientContactName)
	r.ClientContactEmail = strings.ToLower(strings.TrimSpace(r.ClientContactEmail))
	r.ClientContactPhone = strings.TrimSpace(r.ClientContactPhone)
	alts := r.ClientAltEmails[:0]
	for _, e := range r.ClientAltEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			alts = append(alts, e)
		}
	}
	r.ClientAltEmails = alts
}

// NewClient: default untuk client baru sebelum Apply
func NewClient() model.Client {
	return model.Client{
		ClientStatus:         model.ClientStatusActive,
		ClientPriorityNumber: 1,
		ClientIsWapu:         true,
	}
}

// Apply menulis request ke model (create maupun replace)
func (r ClientRequest) Apply(m *model.Client) error {
	m.ClientName = r.ClientName
	m.ClientGroup = r.ClientGroup
	m.ClientTypeID = r.ClientTypeID
	m.ClientContactName = r.ClientContactName
	m.ClientContactPosition = r.ClientContactPosition
	m.ClientContactEmail = r.ClientContactEmail
	m.ClientContactPhone = r.ClientContactPhone
	m.ClientAltEmails = pq.StringArray(r.ClientAltEmails)
	m.ClientReferralFrom = r.ClientReferralFrom

	m.ClientDateOfFirstProject = nil
	if r.ClientDateOfFirstProject != nil && strings.TrimSpace(*r.ClientDateOfFirstProject) != "" {
		t, err := dbtime.ParseDate(*r.ClientDateOfFirstProject)
		if err != nil {
			return err
		}
		m.ClientDateOfFirstProject = &t
	}
	if r.ClientStatus != nil {
		m.ClientStatus = model.ClientStatus(*r.ClientStatus)
	}
	if r.ClientPriorityNumber != nil {
		m.ClientPriorityNumber = *r.ClientPriorityNumber
	}
	if r.ClientIsWapu != nil {
		m.ClientIsWapu = *r.ClientIsWapu
	}
	return nil
}

type ClientTypeRequest struct {
	ClientTypeName        string  `json:"client_type_name"        validate:"required,max=100"`
	ClientTypeDescription *string `json:"client_type_description"`
}
