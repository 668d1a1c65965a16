package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/pekerjaan/milestones/dto"
	"bantal_backend/internals/features/pekerjaan/milestones/model"
	"bantal_backend/internals/features/pekerjaan/milestones/service"
	payModel "bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func newProject(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id, err := projectService.New(db).SpawnFromWorkAgreement(context.Background(), db, kinds.SpawnInput{
		SourceDocumentID: uuid.New(),
		ProjectName:      "Audit",
		Cadence:          kinds.CadenceMonthly,
		ProjectFee:       decimal.NewFromInt(10_000_000),
	})
	require.NoError(t, err)
	return id
}

func TestCreate_AppendsOrderAndSyncs(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	first, err := svc.Create(context.Background(), id, dto.CreateMilestoneRequest{
		Name:        "Kickoff",
		Description: "Rapat awal",
		DueDate:     strp("2025-02-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, first.MilestoneStatus)
	assert.Equal(t, model.PriorityMedium, first.MilestonePriority)
	assert.Equal(t, 0, first.MilestoneOrderIndex)

	second, err := svc.Create(context.Background(), id, dto.CreateMilestoneRequest{
		Name:                 "Laporan",
		Description:          "Laporan akhir",
		DueDate:              strp("2025-03-01"),
		CompletionPercentage: intp(140),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.MilestoneOrderIndex)
	assert.Equal(t, 100, second.MilestoneCompletion)

	list, err := svc.List(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.MilestoneID, list[0].MilestoneID)

	p, err := projectService.Find(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, 100, p.PekerjaanMilestoneCompletion)
	assert.Equal(t, projModel.ProgressNotStarted, p.PekerjaanProgressStatus)
}

func TestCreate_UnknownProject(t *testing.T) {
	svc := service.New(testutil.NewDB(t))

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateMilestoneRequest{Name: "Kickoff"})

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestCreate_BadDueDate(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)

	_, err := service.New(db).Create(context.Background(), id, dto.CreateMilestoneRequest{Name: "Kickoff", DueDate: strp("besok")})

	assert.Equal(t, "due_date", helper.FieldOf(err))
}

func TestUpdate_ProgressFollowsMilestones(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	m, err := svc.Create(context.Background(), id, dto.CreateMilestoneRequest{Name: "Kickoff"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), id, m.MilestoneID, dto.UpdateMilestoneRequest{Name: strp("")})
	assert.Equal(t, "name", helper.FieldOf(err))

	got, err := svc.Update(context.Background(), id, m.MilestoneID, dto.UpdateMilestoneRequest{
		Status:               strp("in_progress"),
		CompletionPercentage: intp(40),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, got.MilestoneStatus)
	assert.Equal(t, 40, got.MilestoneCompletion)

	p, err := projectService.Find(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, projModel.ProgressInProgress, p.PekerjaanProgressStatus)

	_, err = svc.Update(context.Background(), id, m.MilestoneID, dto.UpdateMilestoneRequest{
		Status:               strp("completed"),
		CompletionPercentage: intp(100),
	})
	require.NoError(t, err)

	p, err = projectService.Find(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, projModel.ProgressDone, p.PekerjaanProgressStatus)
}

func TestDelete_DetachesInstallments(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	m, err := svc.Create(context.Background(), id, dto.CreateMilestoneRequest{Name: "Kickoff"})
	require.NoError(t, err)

	inst := payModel.Installment{
		InstallmentPekerjaanID: id,
		InstallmentNumber:      1,
		InstallmentAmount:      decimal.NewFromInt(10_000_000),
		InstallmentPercentage:  decimal.NewFromInt(100),
		InstallmentTriggerType: payModel.TriggerMilestone,
		InstallmentMilestoneID: &m.MilestoneID,
		InstallmentDescription: "Setelah kickoff",
	}
	require.NoError(t, db.Create(&inst).Error)

	require.NoError(t, svc.Delete(context.Background(), id, m.MilestoneID))

	var reloaded payModel.Installment
	require.NoError(t, db.Where("installment_id = ?", inst.InstallmentID).Take(&reloaded).Error)
	assert.Nil(t, reloaded.InstallmentMilestoneID)

	_, err = svc.Get(context.Background(), id, m.MilestoneID)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	err = svc.Delete(context.Background(), id, m.MilestoneID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
