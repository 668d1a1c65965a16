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
	msDTO "bantal_backend/internals/features/pekerjaan/milestones/dto"
	msService "bantal_backend/internals/features/pekerjaan/milestones/service"
	"bantal_backend/internals/features/pekerjaan/payments/dto"
	"bantal_backend/internals/features/pekerjaan/payments/model"
	"bantal_backend/internals/features/pekerjaan/payments/service"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

func strp(s string) *string { return &s }

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newProject(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id, err := projectService.New(db).SpawnFromWorkAgreement(context.Background(), db, kinds.SpawnInput{
		SourceDocumentID: uuid.New(),
		ProjectName:      "Audit",
		Cadence:          kinds.CadenceNonMonthly,
		ProjectFee:       decimal.NewFromInt(50_000_000),
	})
	require.NoError(t, err)
	return id
}

func manual(number int, percentage int64, desc string) dto.InstallmentRequest {
	return dto.InstallmentRequest{
		InstallmentNumber: number,
		Amount:            decimal.NewFromInt(percentage * 500_000),
		Percentage:        pct(percentage),
		TriggerType:       "manual",
		Description:       desc,
	}
}

func TestCheckPercentages(t *testing.T) {
	err := service.CheckPercentages([]dto.InstallmentRequest{manual(1, 50, "a"), manual(2, 40, "b")})
	assert.Equal(t, "installments", helper.FieldOf(err))

	thirds := []dto.InstallmentRequest{
		{Percentage: decimal.RequireFromString("33.33")},
		{Percentage: decimal.RequireFromString("33.33")},
		{Percentage: decimal.RequireFromString("33.34")},
	}
	assert.NoError(t, service.CheckPercentages(thirds))
	assert.NoError(t, service.CheckPercentages([]dto.InstallmentRequest{manual(1, 100, "lunas")}))
}

func TestUpdate_FullPaymentStructure(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	out, err := svc.Update(context.Background(), id, dto.PaymentStructureRequest{
		BasicInfo: &dto.BasicInfoRequest{
			Currency:      strp(" idr "),
			BankName:      strp("BCA"),
			AccountNumber: strp("1234567890"),
			AccountName:   strp("PT Bantal"),
		},
		Installments: []dto.InstallmentRequest{manual(1, 60, "Termin 1"), manual(2, 40, "Termin 2")},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.CompletionPercentage)
	assert.Equal(t, "IDR", out.Data.BasicInfo.Currency)
	require.Len(t, out.Data.Installments, 2)
	assert.Equal(t, model.StatusPending, out.Data.Installments[0].InstallmentStatus)

	p, err := projectService.Find(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, 100, p.PekerjaanPaymentCompletion)
	assert.Equal(t, projModel.CreationInProgress, p.PekerjaanCreationStatus)
}

func TestUpdate_PercentageMismatchWritesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)

	_, err := service.New(db).Update(context.Background(), id, dto.PaymentStructureRequest{
		BasicInfo:    &dto.BasicInfoRequest{BankName: strp("BCA")},
		Installments: []dto.InstallmentRequest{manual(1, 50, "a"), manual(2, 40, "b")},
	})
	assert.ErrorIs(t, err, helper.ErrValidation)

	var n int64
	require.NoError(t, db.Model(&model.Installment{}).Count(&n).Error)
	assert.Zero(t, n)

	p, err := projectService.Find(context.Background(), db, id)
	require.NoError(t, err)
	assert.Nil(t, p.PekerjaanBankName)
}

func TestUpdate_NegativeFee(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	fee := decimal.NewFromInt(-1)

	_, err := service.New(db).Update(context.Background(), id, dto.PaymentStructureRequest{
		BasicInfo: &dto.BasicInfoRequest{ProjectFee: &fee},
	})

	assert.Equal(t, "project_fee", helper.FieldOf(err))
}

func TestUpdate_TriggerRules(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	other := newProject(t, db)
	svc := service.New(db)

	foreign, err := msService.New(db).Create(context.Background(), other, msDTO.CreateMilestoneRequest{Name: "Kickoff"})
	require.NoError(t, err)
	own, err := msService.New(db).Create(context.Background(), id, msDTO.CreateMilestoneRequest{Name: "Laporan akhir"})
	require.NoError(t, err)

	single := func(it dto.InstallmentRequest) error {
		it.InstallmentNumber = 1
		it.Percentage = pct(100)
		it.Description = "Pelunasan"
		_, err := svc.Update(context.Background(), id, dto.PaymentStructureRequest{Installments: []dto.InstallmentRequest{it}})
		return err
	}

	err = single(dto.InstallmentRequest{TriggerType: "milestone"})
	assert.Equal(t, "project_milestone_id", helper.FieldOf(err))

	err = single(dto.InstallmentRequest{TriggerType: "milestone", ProjectMilestoneID: &foreign.MilestoneID})
	assert.Equal(t, "project_milestone_id", helper.FieldOf(err))

	err = single(dto.InstallmentRequest{TriggerType: "event", TriggerValue: strp("invoice_paid")})
	assert.Equal(t, "trigger_value", helper.FieldOf(err))

	err = single(dto.InstallmentRequest{TriggerType: "date", TriggerValue: strp("31/12/2025")})
	assert.Equal(t, "trigger_value", helper.FieldOf(err))

	err = single(dto.InstallmentRequest{TriggerType: "barter"})
	assert.Equal(t, "trigger_type", helper.FieldOf(err))

	require.NoError(t, single(dto.InstallmentRequest{TriggerType: "milestone", ProjectMilestoneID: &own.MilestoneID}))

	var rows []model.Installment
	require.NoError(t, db.Scopes(model.ScopeProject(id)).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].InstallmentMilestoneID)
	assert.Equal(t, own.MilestoneID, *rows[0].InstallmentMilestoneID)
}

func TestUpdate_DateTriggerSetsDueDate(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)

	out, err := service.New(db).Update(context.Background(), id, dto.PaymentStructureRequest{
		Installments: []dto.InstallmentRequest{{
			InstallmentNumber: 1,
			Percentage:        pct(100),
			TriggerType:       "date",
			TriggerValue:      strp("2025-12-31"),
			Description:       "Pelunasan akhir tahun",
		}},
	})
	require.NoError(t, err)
	require.Len(t, out.Data.Installments, 1)
	require.NotNil(t, out.Data.Installments[0].InstallmentDueDate)
	assert.Equal(t, "2025-12-31", out.Data.Installments[0].InstallmentDueDate.Format("2006-01-02"))
}

func TestUpdate_ExistingInstallmentByID(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	out, err := svc.Update(context.Background(), id, dto.PaymentStructureRequest{
		Installments: []dto.InstallmentRequest{manual(1, 100, "Termin tunggal")},
	})
	require.NoError(t, err)
	existing := out.Data.Installments[0].InstallmentID

	edit := manual(1, 100, "Termin tunggal (revisi)")
	edit.ID = &existing
	edit.Status = "paid"
	out, err = svc.Update(context.Background(), id, dto.PaymentStructureRequest{Installments: []dto.InstallmentRequest{edit}})
	require.NoError(t, err)
	require.Len(t, out.Data.Installments, 1)
	assert.Equal(t, "Termin tunggal (revisi)", out.Data.Installments[0].InstallmentDescription)
	assert.Equal(t, model.StatusPaid, out.Data.Installments[0].InstallmentStatus)

	missing := uuid.New()
	edit.ID = &missing
	_, err = svc.Update(context.Background(), id, dto.PaymentStructureRequest{Installments: []dto.InstallmentRequest{edit}})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestUpdate_InstallmentListReplacesStoredSet(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)
	ctx := context.Background()

	out, err := svc.Update(ctx, id, dto.PaymentStructureRequest{
		Installments: []dto.InstallmentRequest{manual(1, 50, "DP"), manual(2, 50, "Pelunasan")},
	})
	require.NoError(t, err)
	first := out.Data.Installments[0].InstallmentID

	_, err = svc.Update(ctx, id, dto.PaymentStructureRequest{
		Installments: []dto.InstallmentRequest{manual(1, 40, "DP baru"), manual(2, 60, "Pelunasan baru")},
	})
	require.NoError(t, err)

	stored := func() ([]model.Installment, decimal.Decimal) {
		var rows []model.Installment
		require.NoError(t, db.Scopes(model.ScopeProject(id)).Order("installment_number").Find(&rows).Error)
		sum := decimal.Zero
		for _, r := range rows {
			sum = sum.Add(r.InstallmentPercentage)
		}
		return rows, sum
	}
	rows, sum := stored()
	require.Len(t, rows, 2)
	assert.True(t, sum.Equal(pct(100)), "total %s", sum)
	assert.Equal(t, "DP baru", rows[0].InstallmentDescription)

	// id lama yang sudah terhapus tidak bisa dipakai lagi, set tetap utuh
	stale := manual(1, 100, "Lunas")
	stale.ID = &first
	_, err = svc.Update(ctx, id, dto.PaymentStructureRequest{Installments: []dto.InstallmentRequest{stale}})
	assert.ErrorIs(t, err, helper.ErrNotFound)
	rows, sum = stored()
	assert.Len(t, rows, 2)
	assert.True(t, sum.Equal(pct(100)))

	keep := manual(2, 100, "Lunas sekaligus")
	keep.ID = &rows[1].InstallmentID
	_, err = svc.Update(ctx, id, dto.PaymentStructureRequest{Installments: []dto.InstallmentRequest{keep}})
	require.NoError(t, err)
	rows, sum = stored()
	require.Len(t, rows, 1)
	assert.Equal(t, *keep.ID, rows[0].InstallmentID)
	assert.True(t, sum.Equal(pct(100)))
}

func TestDeleteInstallment(t *testing.T) {
	db := testutil.NewDB(t)
	id := newProject(t, db)
	svc := service.New(db)

	out, err := svc.Update(context.Background(), id, dto.PaymentStructureRequest{
		Installments: []dto.InstallmentRequest{manual(1, 100, "Termin tunggal")},
	})
	require.NoError(t, err)
	inst := out.Data.Installments[0].InstallmentID

	out, err = svc.DeleteInstallment(context.Background(), id, inst)
	require.NoError(t, err)
	assert.Empty(t, out.Data.Installments)
	assert.Equal(t, 25, out.CompletionPercentage)

	_, err = svc.DeleteInstallment(context.Background(), id, inst)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
