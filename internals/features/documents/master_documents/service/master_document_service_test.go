package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bantal_backend/internals/constants"
	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	"bantal_backend/internals/features/documents/master_documents/dto"
	"bantal_backend/internals/features/documents/master_documents/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

func intp(i int) *int { return &i }

func create(t *testing.T, svc *service.Service, typ *docTypeModel.DocumentType, number string, legal time.Time, company *uuid.UUID) int {
	t.Helper()
	m, err := svc.Create(context.Background(), svc.DB, typ, dto.CreateFields{
		DocumentNumber: number,
		Name:           "Dokumen " + number,
		LegalDate:      legal,
		CompanyID:      company,
	}, nil)
	require.NoError(t, err)
	return m.MasterDocumentIndexNumber
}

func TestGetLatestIndexNumber(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.SeedFixtures(t, db)
	svc := service.New(db)
	ctx := context.Background()

	typ, err := svc.Types.FindByShorthand(ctx, "SPK")
	require.NoError(t, err)

	latest, err := svc.GetLatestIndexNumber(ctx, "SPK", nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, latest)

	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	company := fx.Company.CompanyID

	assert.Equal(t, 1, create(t, svc, typ, "001/SPK/III/2025", march, &company))
	assert.Equal(t, 2, create(t, svc, typ, "002/SPK/III/2025", march, &company))
	assert.Equal(t, 1, create(t, svc, typ, "001/SPK/IV/2025", april, &company))
	// tanpa company: indeks dihitung lintas company
	assert.Equal(t, 3, create(t, svc, typ, "X-003/SPK/III/2025", march, nil))

	latest, err = svc.GetLatestIndexNumber(ctx, "spk", intp(3), intp(2025), &company)
	require.NoError(t, err)
	assert.Equal(t, 2, latest)

	latest, err = svc.GetLatestIndexNumber(ctx, "SPK", intp(4), intp(2025), &company)
	require.NoError(t, err)
	assert.Equal(t, 1, latest)

	latest, err = svc.GetLatestIndexNumber(ctx, "SPK", nil, intp(2024), nil)
	require.NoError(t, err)
	assert.Zero(t, latest)

	latest, err = svc.GetLatestIndexNumber(ctx, "Pwn", nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, latest)

	_, err = svc.GetLatestIndexNumber(ctx, "SPK", intp(13), intp(2025), nil)
	assert.Equal(t, "month", helper.FieldOf(err))

	_, err = svc.GetLatestIndexNumber(ctx, "ZZZ", nil, nil, nil)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestCreate_ChecksReferences(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.New(db)
	ctx := context.Background()
	typ, err := svc.Types.FindByShorthand(ctx, "Pwn")
	require.NoError(t, err)

	missing := uuid.New()
	_, err = svc.Create(ctx, db, typ, dto.CreateFields{
		DocumentNumber: "001/PWN/2025",
		Name:           "Penawaran",
		LegalDate:      time.Now(),
		CompanyID:      &missing,
	}, nil)
	require.ErrorIs(t, err, helper.ErrNotFound)
	assert.Contains(t, err.Error(), "Company")

	m, err := svc.Create(ctx, db, typ, dto.CreateFields{
		DocumentNumber: "002/PWN/2025",
		Name:           "Penawaran",
		LegalDate:      time.Now(),
		IndexNumber:    intp(42),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, m.MasterDocumentIndexNumber)
	assert.Equal(t, constants.DocumentStatusDraft, m.MasterDocumentStatus)
}

func TestUpdateStatus(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.New(db)
	ctx := context.Background()
	typ, err := svc.Types.FindByShorthand(ctx, "Pwn")
	require.NoError(t, err)

	m, err := svc.Create(ctx, db, typ, dto.CreateFields{
		DocumentNumber: "003/PWN/2025",
		Name:           "Penawaran",
		LegalDate:      time.Now(),
	}, nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, m.MasterDocumentID, "FINALIZED")
	assert.Equal(t, "status", helper.FieldOf(err))

	_, err = svc.UpdateStatus(ctx, m.MasterDocumentID, "draft")
	assert.Equal(t, "status", helper.FieldOf(err))

	_, err = svc.UpdateStatus(ctx, m.MasterDocumentID, "unknown")
	assert.Equal(t, "status", helper.FieldOf(err))

	off, err := svc.SetActive(ctx, m.MasterDocumentID, false)
	require.NoError(t, err)
	assert.False(t, off.MasterDocumentIsActive)

	_, err = svc.SetActive(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestUpdateStatus_OnlyMovesForward(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.New(db)
	ctx := context.Background()
	typ, err := svc.Types.FindByShorthand(ctx, "Pwn")
	require.NoError(t, err)

	m, err := svc.Create(ctx, db, typ, dto.CreateFields{
		DocumentNumber: "004/PWN/2025",
		Name:           "Penawaran",
		LegalDate:      time.Now(),
	}, nil)
	require.NoError(t, err)

	steps := []struct {
		to   string
		want error
		now  constants.DocumentStatus
	}{
		{"ARCHIVED", nil, constants.DocumentStatusArchived},
		{"EXPIRED", helper.ErrConflict, constants.DocumentStatusArchived},
		{"ACTIVE", helper.ErrConflict, constants.DocumentStatusArchived},
		{"PENDING", helper.ErrConflict, constants.DocumentStatusArchived},
		{"ARCHIVED", helper.ErrConflict, constants.DocumentStatusArchived},
		{"CANCELLED", nil, constants.DocumentStatusCancelled},
		{"PENDING", helper.ErrConflict, constants.DocumentStatusCancelled},
	}
	for _, st := range steps {
		_, err := svc.UpdateStatus(ctx, m.MasterDocumentID, st.to)
		if st.want == nil {
			require.NoError(t, err, "-> %s", st.to)
		} else {
			assert.ErrorIs(t, err, st.want, "-> %s", st.to)
		}
		got, err := svc.FindByID(ctx, m.MasterDocumentID)
		require.NoError(t, err)
		assert.Equal(t, st.now, got.MasterDocumentStatus, "setelah -> %s", st.to)
	}

	other, err := svc.Create(ctx, db, typ, dto.CreateFields{
		DocumentNumber: "005/PWN/2025",
		Name:           "Penawaran",
		LegalDate:      time.Now(),
	}, nil)
	require.NoError(t, err)
	for _, to := range []string{"pending", "signed", "active", "rejected"} {
		_, err := svc.UpdateStatus(ctx, other.MasterDocumentID, to)
		require.NoError(t, err, "-> %s", to)
	}
}
