package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/pekerjaan/projects/dto"
	"bantal_backend/internals/features/pekerjaan/projects/model"
	"bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

func spawn(t *testing.T, svc *service.Service, description string) uuid.UUID {
	t.Helper()
	id, err := svc.SpawnFromWorkAgreement(context.Background(), svc.DB, kinds.SpawnInput{
		SourceDocumentID: uuid.New(),
		ProjectName:      "Audit Sistem Informasi",
		Description:      description,
		Cadence:          kinds.CadenceNonMonthly,
		ProjectFee:       decimal.NewFromInt(25_000_000),
	})
	require.NoError(t, err)
	return id
}

func strp(s string) *string { return &s }

func TestSpawnFromWorkAgreement(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.New(db)
	spk := uuid.New()

	id, err := svc.SpawnFromWorkAgreement(context.Background(), db, kinds.SpawnInput{
		SourceDocumentID: spk,
		ProjectName:      "  SPK Audit  ",
		Cadence:          kinds.BillingCadence("weekly"),
		ProjectFee:       decimal.NewFromInt(10_000_000),
		IncludeVAT:       true,
	})
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "SPK Audit", p.PekerjaanProjectName)
	assert.Equal(t, spk, p.PekerjaanSPKID)
	assert.Equal(t, string(kinds.CadenceNonMonthly), p.PekerjaanBillingCadence)
	assert.Equal(t, model.DefaultCurrency, p.PekerjaanCurrency)
	assert.Equal(t, model.CreationCreated, p.PekerjaanCreationStatus)
	assert.Equal(t, model.ProgressNotStarted, p.PekerjaanProgressStatus)
	require.NotNil(t, p.PekerjaanProjectFee)
	assert.True(t, p.PekerjaanProjectFee.Equal(decimal.NewFromInt(10_000_000)))

	_, err = svc.SpawnFromWorkAgreement(context.Background(), db, kinds.SpawnInput{SourceDocumentID: spk, ProjectName: "lagi"})
	assert.ErrorIs(t, err, helper.ErrConflict)
}

func TestGet_NotFound(t *testing.T) {
	svc := service.New(testutil.NewDB(t))

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestUpdateBaseInfo(t *testing.T) {
	svc := service.New(testutil.NewDB(t))
	id := spawn(t, svc, "")

	_, err := svc.UpdateBaseInfo(context.Background(), id, dto.BaseInfoRequest{ProjectName: strp("   ")})
	assert.Equal(t, "project_name", helper.FieldOf(err))

	p, err := svc.UpdateBaseInfo(context.Background(), id, dto.BaseInfoRequest{
		ProjectDescription: strp(" Audit menyeluruh "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Audit menyeluruh", p.Description())
	assert.Equal(t, 100, p.PekerjaanBaseInfoCompletion)
	assert.Equal(t, model.CreationInProgress, p.PekerjaanCreationStatus)
	// base info 100 + payment 25 (fee & currency)
	assert.Equal(t, 31, p.PekerjaanCompletion)
}

func TestNormalizeTeam(t *testing.T) {
	cases := []struct {
		name  string
		in    dto.TeamStructureRequest
		field string
	}{
		{"blank lead", dto.TeamStructureRequest{"project_lead": " "}, "project_lead"},
		{"lead not a string", dto.TeamStructureRequest{"project_lead": 12}, "project_lead"},
		{"members not an array", dto.TeamStructureRequest{"auditor": "budi"}, "auditor"},
		{"blank member", dto.TeamStructureRequest{"auditor": []any{"budi", ""}}, "auditor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.NormalizeTeam(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, helper.ErrValidation)
			assert.Equal(t, tc.field, helper.FieldOf(err))
		})
	}

	out, err := service.NormalizeTeam(dto.TeamStructureRequest{
		"project_lead": " Andi ",
		"auditor":      []any{" Budi ", "Citra"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Andi", out["project_lead"])
	assert.Equal(t, []string{"Budi", "Citra"}, out["auditor"])
}

func TestUpdateTeam_MergesPositions(t *testing.T) {
	svc := service.New(testutil.NewDB(t))
	id := spawn(t, svc, "Audit")

	_, err := svc.UpdateTeam(context.Background(), id, dto.TeamStructureRequest{"project_lead": "Andi"})
	require.NoError(t, err)

	merged, err := svc.UpdateTeam(context.Background(), id, dto.TeamStructureRequest{"auditor": []any{"Budi"}})
	require.NoError(t, err)
	assert.Equal(t, "Andi", merged["project_lead"])

	team, err := svc.GetTeam(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Andi", team["project_lead"])
	assert.Equal(t, []any{"Budi"}, team["auditor"])

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 100, p.PekerjaanTeamCompletion)
}

func TestList_Filters(t *testing.T) {
	svc := service.New(testutil.NewDB(t))
	spawn(t, svc, "")
	spawn(t, svc, "")

	rows, total, err := svc.List(context.Background(), dto.ListFilter{Cadence: "non_monthly"}, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	_, total, err = svc.List(context.Background(), dto.ListFilter{CreationStatus: "completed"}, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}
