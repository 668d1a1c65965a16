// file: internals/features/pekerjaan/projects/dto/project_dto.go
package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"bantal_backend/internals/features/pekerjaan/projects/model"
)

type BaseInfoRequest struct {
	ProjectName        *string `json:"project_name"`
	ProjectDescription *string `json:"project_description"`
}

func (r *BaseInfoRequest) Normalize() {
	if r.ProjectName != nil {
		s := strings.TrimSpace(*r.ProjectName)
		r.ProjectName = &s
	}
	if r.ProjectDescription != nil {
		s := strings.TrimSpace(*r.ProjectDescription)
		r.ProjectDescription = &s
	}
}

type BaseInfoResponse struct {
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
	SPKID              string `json:"spk_id"`
	BillingCadence     string `json:"billing_cadence"`
}

func BaseInfoFrom(m *model.Project) BaseInfoResponse {
	return BaseInfoResponse{
		ProjectName:        m.PekerjaanProjectName,
		ProjectDescription: m.Description(),
		SPKID:              m.PekerjaanSPKID.String(),
		BillingCadence:     m.PekerjaanBillingCadence,
	}
}

// TeamStructureRequest: {"project_lead": "...", "<posisi>": ["...", ...]}
type TeamStructureRequest map[string]any

type ProjectResponse struct {
	ID                 string           `json:"pekerjaan_id"`
	ProjectName        string           `json:"project_name"`
	ProjectDescription string           `json:"project_description"`
	SPKID              string           `json:"spk_id"`
	BillingCadence     string           `json:"billing_cadence"`
	ProjectFee         *decimal.Decimal `json:"project_fee,omitempty"`
	Currency           string           `json:"currency"`
	IncludeVAT         bool             `json:"include_vat"`
	TeamStructure      map[string]any   `json:"team_structure"`
	CreationStatus     string           `json:"creation_status"`
	ProgressStatus     string           `json:"progress_status"`
	Completion         int              `json:"completion_percentage"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

func FromModel(m *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:                 m.PekerjaanID.String(),
		ProjectName:        m.PekerjaanProjectName,
		ProjectDescription: m.Description(),
		SPKID:              m.PekerjaanSPKID.String(),
		BillingCadence:     m.PekerjaanBillingCadence,
		ProjectFee:         m.PekerjaanProjectFee,
		Currency:           m.PekerjaanCurrency,
		IncludeVAT:         m.PekerjaanIncludeVAT,
		TeamStructure:      m.Team(),
		CreationStatus:     string(m.PekerjaanCreationStatus),
		ProgressStatus:     string(m.PekerjaanProgressStatus),
		Completion:         m.PekerjaanCompletion,
		CreatedAt:          m.PekerjaanCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          m.PekerjaanUpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func FromModels(rows []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

type ListFilter struct {
	CreationStatus string
	ProgressStatus string
	Cadence        string
	Search         string
	OrderBy        string
}

// SortColumns: whitelist ?sort_by= untuk daftar pekerjaan
var SortColumns = map[string]string{
	"created_at": "pekerjaan_created_at",
	"updated_at": "pekerjaan_updated_at",
	"name":       "pekerjaan_project_name",
	"completion": "pekerjaan_completion_percentage",
}
