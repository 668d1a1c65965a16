package completion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	msModel "bantal_backend/internals/features/pekerjaan/milestones/model"
	payModel "bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
)

func strp(s string) *string { return &s }

func fullProject() *projModel.Project {
	fee := decimal.NewFromInt(50_000_000)
	return &projModel.Project{
		PekerjaanProjectName:         "Audit Sistem",
		PekerjaanProjectDescription:  strp("Audit sistem informasi"),
		PekerjaanTeamMemberStructure: datatypes.JSON(`{"project_lead":"andi","auditor":["budi"]}`),
		PekerjaanProjectFee:          &fee,
		PekerjaanCurrency:            "IDR",
		PekerjaanBankName:            strp("BCA"),
		PekerjaanAccountNumber:       strp("123"),
		PekerjaanAccountName:         strp("PT Bantal"),
		PekerjaanCreationStatus:      projModel.CreationInProgress,
	}
}

func fullMilestones() []msModel.Milestone {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []msModel.Milestone{
		{MilestoneName: "Kickoff", MilestoneDescription: "Rapat awal", MilestoneDueDate: &due},
	}
}

func fullInstallments() []payModel.Installment {
	return []payModel.Installment{
		{InstallmentTriggerType: payModel.TriggerManual, InstallmentDescription: "Termin 1"},
	}
}

func TestBaseInfo(t *testing.T) {
	assert.Equal(t, 0, BaseInfo("", "  "))
	assert.Equal(t, 50, BaseInfo("Nama", ""))
	assert.Equal(t, 100, BaseInfo("Nama", "Deskripsi"))
}

func TestTeam(t *testing.T) {
	assert.Equal(t, 0, Team(map[string]any{}))
	assert.Equal(t, 50, Team(map[string]any{"project_lead": "andi"}))
	assert.Equal(t, 50, Team(map[string]any{"auditor": []any{"budi"}}))
	assert.Equal(t, 50, Team(map[string]any{"project_lead": "andi", "auditor": []any{" "}}))
	assert.Equal(t, 100, Team(map[string]any{"project_lead": "andi", "auditor": []any{"budi"}}))
}

func TestMilestones(t *testing.T) {
	assert.Equal(t, 0, Milestones(nil))

	due := time.Now()
	assert.Equal(t, 25, Milestones([]msModel.Milestone{{}}))
	assert.Equal(t, 75, Milestones([]msModel.Milestone{{MilestoneName: "A", MilestoneDueDate: &due}}))
	assert.Equal(t, 100, Milestones(fullMilestones()))
}

func TestPayment(t *testing.T) {
	empty := &projModel.Project{PekerjaanCurrency: "IDR"}
	assert.Equal(t, 0, Payment(empty, nil))

	p := fullProject()
	assert.Equal(t, 50, Payment(p, nil))
	assert.Equal(t, 75, Payment(p, []payModel.Installment{{InstallmentTriggerType: payModel.TriggerManual}}))
	assert.Equal(t, 100, Payment(p, fullInstallments()))
}

func TestCompute_EmptyProjectStaysCreated(t *testing.T) {
	p := &projModel.Project{PekerjaanCurrency: "IDR", PekerjaanCreationStatus: projModel.CreationCreated}

	s := Compute(p, nil, nil)

	assert.Equal(t, Sections{}, s)
	assert.Equal(t, projModel.CreationCreated, NextCreationStatus(p.PekerjaanCreationStatus, s))
}

func TestCompute_FullProjectCompletes(t *testing.T) {
	s := Compute(fullProject(), fullMilestones(), fullInstallments())

	assert.Equal(t, Sections{BaseInfo: 100, Team: 100, Milestones: 100, Payment: 100, Overall: 100}, s)
	assert.Equal(t, projModel.CreationCompleted, NextCreationStatus(projModel.CreationCreated, s))
}

func TestNextCreationStatus(t *testing.T) {
	partial := Sections{BaseInfo: 100, Overall: 25}

	assert.Equal(t, projModel.CreationInProgress, NextCreationStatus(projModel.CreationCreated, partial))
	assert.Equal(t, projModel.CreationInProgress, NextCreationStatus(projModel.CreationCompleted, partial))
	assert.Equal(t, projModel.CreationInProgress, NextCreationStatus(projModel.CreationInProgress, Sections{}))
}

func TestProgressStatus(t *testing.T) {
	assert.Equal(t, projModel.ProgressNotStarted, ProgressStatus(nil))
	assert.Equal(t, projModel.ProgressNotStarted, ProgressStatus([]msModel.Milestone{{MilestoneStatus: msModel.StatusPending}}))
	assert.Equal(t, projModel.ProgressInProgress, ProgressStatus([]msModel.Milestone{
		{MilestoneStatus: msModel.StatusCompleted, MilestoneCompletion: 100},
		{MilestoneStatus: msModel.StatusPending},
	}))
	assert.Equal(t, projModel.ProgressDone, ProgressStatus([]msModel.Milestone{
		{MilestoneStatus: msModel.StatusCompleted, MilestoneCompletion: 100},
		{MilestoneStatus: msModel.StatusCompleted, MilestoneCompletion: 150},
	}))
}
