package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"bantal_backend/internals/blobs"
	"bantal_backend/internals/constants"
	"bantal_backend/internals/features/documents/factory"
	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/documents/kinds/mocks"
	"bantal_backend/internals/features/documents/lifecycle/dto"
	"bantal_backend/internals/features/documents/lifecycle/service"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	tagnbModel "bantal_backend/internals/features/documents/non_monthly_billings/model"
	waModel "bantal_backend/internals/features/documents/work_agreements/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

type env struct {
	db  *gorm.DB
	fx  testutil.Fixtures
	svc *service.Service
}

func newEnv(t *testing.T, spawner kinds.ProjectSpawner) env {
	t.Helper()
	db := testutil.NewDB(t)
	fx := testutil.SeedFixtures(t, db)
	if spawner == nil {
		spawner = projectService.New(db)
	}
	reg := factory.NewRegistry(spawner)
	require.NoError(t, reg.Build(context.Background(), db))
	return env{db: db, fx: fx, svc: service.New(db, reg, blobs.NewMemoryStore())}
}

func spkPayload(t *testing.T, fx testutil.Fixtures, number string, extra map[string]any) []byte {
	t.Helper()
	body := map[string]any{
		"document_number":      number,
		"document_name":        "SPK Audit " + number,
		"document_legal_date":  "2025-03-10",
		"company_id":           fx.Company.CompanyID,
		"client_id":            fx.Client.ClientID,
		"document_description": "Audit tahunan",
		"start_date":           "2025-01-01",
		"end_date":             "2025-06-30",
		"project_fee":          "60000000",
		"payment_installment":  6,
		"is_include_vat":       true,
	}
	for k, v := range extra {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func createSPK(t *testing.T, e env, number string) *service.CreateResult {
	t.Helper()
	res, err := e.svc.Create(context.Background(), dto.CreateInput{
		Identifier: "SPK",
		Payload:    spkPayload(t, e.fx, number, nil),
		CreatedBy:  &e.fx.Identity.IdentityID,
		File:       &dto.FileInput{Filename: "spk.pdf", Content: []byte("%PDF-1.4 v1"), MimeType: "application/pdf"},
	})
	require.NoError(t, err)
	return res
}

func TestCreate_DraftWithFirstVersion(t *testing.T) {
	e := newEnv(t, nil)

	res := createSPK(t, e, "001/SPK/III/2025")

	assert.Equal(t, kinds.KindWorkAgreement, res.Kind)
	assert.Equal(t, constants.DocumentStatusDraft, res.Master.MasterDocumentStatus)
	assert.Equal(t, 1, res.Master.MasterDocumentIndexNumber)
	require.NotNil(t, res.Master.MasterDocumentBlobPointer)

	var rows []waModel.WorkAgreement
	require.NoError(t, e.db.Where("spk_master_document_id = ?", res.Master.MasterDocumentID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsLatest)
	assert.Equal(t, 1, rows[0].VersionNumber)
	assert.Equal(t, e.fx.Identity.IdentityID.String(), rows[0].UploadedBy)
}

func TestCreate_IndexIncrementsWithinMonth(t *testing.T) {
	e := newEnv(t, nil)

	createSPK(t, e, "001/SPK/III/2025")
	second := createSPK(t, e, "002/SPK/III/2025")

	assert.Equal(t, 2, second.Master.MasterDocumentIndexNumber)
}

func TestCreate_ResolvesByFullName(t *testing.T) {
	e := newEnv(t, nil)

	res, err := e.svc.Create(context.Background(), dto.CreateInput{
		Identifier: "surat perjanjian kerja",
		Payload:    spkPayload(t, e.fx, "010/SPK/III/2025", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, kinds.KindWorkAgreement, res.Kind)
	assert.Nil(t, res.Master.MasterDocumentBlobPointer)
}

func TestCreate_MissingVariantFieldWritesNothing(t *testing.T) {
	e := newEnv(t, nil)

	_, err := e.svc.Create(context.Background(), dto.CreateInput{
		Identifier: "SPK",
		Payload:    spkPayload(t, e.fx, "003/SPK/III/2025", map[string]any{"client_id": nil}),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrValidation)
	assert.Equal(t, "client_id", helper.FieldOf(err))

	var n int64
	require.NoError(t, e.db.Model(&mdModel.MasterDocument{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreate_DuplicateNumberConflicts(t *testing.T) {
	e := newEnv(t, nil)
	createSPK(t, e, "004/SPK/III/2025")

	_, err := e.svc.Create(context.Background(), dto.CreateInput{
		Identifier: "SPK",
		Payload:    spkPayload(t, e.fx, "004/SPK/III/2025", nil),
	})

	assert.ErrorIs(t, err, helper.ErrConflict)
}

func TestCreate_UnknownType(t *testing.T) {
	e := newEnv(t, nil)

	_, err := e.svc.Create(context.Background(), dto.CreateInput{Identifier: "Memo", Payload: []byte(`{}`)})

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestFinalize_SPKSpawnsOneProject(t *testing.T) {
	e := newEnv(t, nil)
	created := createSPK(t, e, "005/SPK/III/2025")
	id := created.Master.MasterDocumentID

	out, err := e.svc.Finalize(context.Background(), dto.FinalizeInput{
		Identifier:       "SPK",
		DocumentID:       id,
		Summary:          "Ditandatangani kedua pihak",
		PhysicalDelivery: true,
		Files:            []dto.FileInput{{Filename: "ttd.pdf", Content: []byte("%PDF signed"), MimeType: "application/pdf"}},
		FinalizedBy:      &e.fx.Identity.IdentityID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.ProjectID)
	assert.Equal(t, string(kinds.CadenceMonthly), out.Cadence)
	assert.Len(t, out.Attachments, 1)
	assert.Contains(t, out.Message, "successfully finalized")

	var projects []projModel.Project
	require.NoError(t, e.db.Where("pekerjaan_spk_id = ?", id).Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, *out.ProjectID, projects[0].PekerjaanID)
	assert.Equal(t, projModel.CreationCreated, projects[0].PekerjaanCreationStatus)

	var master mdModel.MasterDocument
	require.NoError(t, e.db.Where("master_document_id = ?", id).Take(&master).Error)
	assert.Equal(t, constants.DocumentStatusFinalized, master.MasterDocumentStatus)
	assert.True(t, master.MasterDocumentPhysicalDelivery)
	assert.NotNil(t, master.MasterDocumentFinalizedAt)
}

func TestFinalize_TwiceConflicts(t *testing.T) {
	e := newEnv(t, nil)
	id := createSPK(t, e, "006/SPK/III/2025").Master.MasterDocumentID
	in := dto.FinalizeInput{Identifier: "SPK", DocumentID: id}

	_, err := e.svc.Finalize(context.Background(), in)
	require.NoError(t, err)

	_, err = e.svc.Finalize(context.Background(), in)
	assert.ErrorIs(t, err, helper.ErrConflict)

	var n int64
	require.NoError(t, e.db.Model(&projModel.Project{}).Where("pekerjaan_spk_id = ?", id).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestFinalize_Guards(t *testing.T) {
	e := newEnv(t, nil)
	id := createSPK(t, e, "007/SPK/III/2025").Master.MasterDocumentID

	_, err := e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "SPK"})
	assert.Equal(t, "id", helper.FieldOf(err))

	files := make([]dto.FileInput, 3)
	_, err = e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "SPK", DocumentID: id, Files: files})
	assert.Equal(t, "files", helper.FieldOf(err))

	_, err = e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "Pwn", DocumentID: id})
	assert.Equal(t, "documentType", helper.FieldOf(err))

	_, err = e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "SPK", DocumentID: uuid.New()})
	assert.ErrorIs(t, err, helper.ErrNotFound)

	var master mdModel.MasterDocument
	require.NoError(t, e.db.Where("master_document_id = ?", id).Take(&master).Error)
	assert.Equal(t, constants.DocumentStatusDraft, master.MasterDocumentStatus)
}

func TestFinalize_SpawnerFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockProjectSpawner(ctrl)
	e := newEnv(t, spawner)
	id := createSPK(t, e, "008/SPK/III/2025").Master.MasterDocumentID

	spawner.EXPECT().
		SpawnFromWorkAgreement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, in kinds.SpawnInput) (uuid.UUID, error) {
			assert.Equal(t, id, in.SourceDocumentID)
			assert.Equal(t, kinds.CadenceMonthly, in.Cadence)
			assert.True(t, in.IncludeVAT)
			return uuid.Nil, helper.Conflict("Project for document %s already exists", id)
		})

	_, err := e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "SPK", DocumentID: id})
	assert.ErrorIs(t, err, helper.ErrConflict)

	var master mdModel.MasterDocument
	require.NoError(t, e.db.Where("master_document_id = ?", id).Take(&master).Error)
	assert.Equal(t, constants.DocumentStatusDraft, master.MasterDocumentStatus)
}

func TestRevise_AddsVersionAndFile(t *testing.T) {
	e := newEnv(t, nil)
	created := createSPK(t, e, "009/SPK/III/2025")
	id := created.Master.MasterDocumentID

	detail, err := e.svc.Revise(context.Background(), dto.ReviseInput{
		DocumentID: id,
		Payload:    spkPayload(t, e.fx, "009/SPK/III/2025", map[string]any{"document_description": "Audit tahunan (revisi)"}),
		File:       &dto.FileInput{Filename: "spk-v2.pdf", Content: []byte("%PDF-1.4 v2"), MimeType: "application/pdf"},
	})
	require.NoError(t, err)

	row, ok := detail.Details.(*waModel.WorkAgreement)
	require.True(t, ok)
	assert.Equal(t, 2, row.VersionNumber)
	assert.True(t, row.IsLatest)
	assert.Equal(t, "Audit tahunan (revisi)", row.SPKDocumentDescription)

	var latest int64
	require.NoError(t, e.db.Model(&waModel.WorkAgreement{}).
		Where("spk_master_document_id = ? AND spk_is_latest = ?", id, true).
		Count(&latest).Error)
	assert.Equal(t, int64(1), latest)

	versions, err := e.svc.FileVersions(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, versions, 2)

	file, err := e.svc.LatestFile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 v2"), file.Content)
}

func TestRevise_FinalizedRejected(t *testing.T) {
	e := newEnv(t, nil)
	id := createSPK(t, e, "011/SPK/III/2025").Master.MasterDocumentID
	_, err := e.svc.Finalize(context.Background(), dto.FinalizeInput{Identifier: "SPK", DocumentID: id})
	require.NoError(t, err)

	_, err = e.svc.Revise(context.Background(), dto.ReviseInput{
		DocumentID: id,
		Payload:    spkPayload(t, e.fx, "011/SPK/III/2025", nil),
	})
	assert.ErrorIs(t, err, helper.ErrConflict)
}

/* =========================
   Surat Penawaran & Tagihan Non Bulanan
   ========================= */

func docPayload(t *testing.T, fx testutil.Fixtures, number string, fields, extra map[string]any) []byte {
	t.Helper()
	body := map[string]any{
		"document_number":     number,
		"document_name":       "Dokumen " + number,
		"document_legal_date": "2025-03-10",
		"company_id":          fx.Company.CompanyID,
	}
	for k, v := range fields {
		body[k] = v
	}
	for k, v := range extra {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

type variantCase struct {
	identifier string
	kind       kinds.Kind
	table      string
	prefix     string
	fields     func(fx testutil.Fixtures) map[string]any
	required   []string
}

func variantCases() []variantCase {
	return []variantCase{
		{
			identifier: "Pwn",
			kind:       kinds.KindOfferingLetter,
			table:      "surat_penawaran",
			prefix:     "surat_penawaran_",
			fields: func(fx testutil.Fixtures) map[string]any {
				return map[string]any{
					"client_id":            fx.Client.ClientID,
					"document_description": "Penawaran jasa audit",
					"offered_service":      "Audit laporan keuangan",
					"person_in_charge_id":  fx.Identity.IdentityID,
				}
			},
			required: []string{"client_id", "document_description", "offered_service", "person_in_charge_id"},
		},
		{
			identifier: "TagNB",
			kind:       kinds.KindNonMonthlyBilling,
			table:      "surat_tagihan_non_bulanan",
			prefix:     "tagnb_",
			fields: func(fx testutil.Fixtures) map[string]any {
				return map[string]any{
					"client_id":            fx.Client.ClientID,
					"document_description": "Tagihan jasa konsultasi",
					"contract_value":       "12000000",
				}
			},
			required: []string{"client_id", "document_description"},
		},
	}
}

func (c variantCase) countRows(t *testing.T, db *gorm.DB, masterID uuid.UUID) (all, latest int64, versions []int) {
	t.Helper()
	col := c.prefix + "master_document_id = ?"
	require.NoError(t, db.Table(c.table).Where(col, masterID).Count(&all).Error)
	require.NoError(t, db.Table(c.table).Where(col+" AND "+c.prefix+"is_latest = ?", masterID, true).Count(&latest).Error)
	require.NoError(t, db.Table(c.table).Where(col, masterID).Pluck(c.prefix+"version_number", &versions).Error)
	return all, latest, versions
}

func TestCreateAndFinalize_OtherDocumentTypes(t *testing.T) {
	for _, tc := range variantCases() {
		t.Run(tc.identifier, func(t *testing.T) {
			e := newEnv(t, nil)
			ctx := context.Background()

			res, err := e.svc.Create(ctx, dto.CreateInput{
				Identifier: tc.identifier,
				Payload:    docPayload(t, e.fx, "001/"+tc.identifier+"/III/2025", tc.fields(e.fx), nil),
				CreatedBy:  &e.fx.Identity.IdentityID,
				File:       &dto.FileInput{Filename: "dok.pdf", Content: []byte("%PDF-1.4"), MimeType: "application/pdf"},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
			assert.Equal(t, constants.DocumentStatusDraft, res.Master.MasterDocumentStatus)
			assert.Equal(t, 1, res.Master.MasterDocumentIndexNumber)

			id := res.Master.MasterDocumentID
			all, latest, versions := tc.countRows(t, e.db, id)
			assert.Equal(t, int64(1), all)
			assert.Equal(t, int64(1), latest)
			assert.Equal(t, []int{1}, versions)

			out, err := e.svc.Finalize(ctx, dto.FinalizeInput{
				Identifier:  tc.identifier,
				DocumentID:  id,
				Summary:     "Dikirim ke klien",
				Files:       []dto.FileInput{{Filename: "ttd.pdf", Content: []byte("%PDF signed"), MimeType: "application/pdf"}},
				FinalizedBy: &e.fx.Identity.IdentityID,
			})
			require.NoError(t, err)
			assert.Nil(t, out.ProjectID)
			assert.Empty(t, out.Cadence)
			assert.Len(t, out.Attachments, 1)
			assert.Contains(t, out.Message, "successfully finalized")

			var master mdModel.MasterDocument
			require.NoError(t, e.db.Where("master_document_id = ?", id).Take(&master).Error)
			assert.Equal(t, constants.DocumentStatusFinalized, master.MasterDocumentStatus)

			var projects int64
			require.NoError(t, e.db.Model(&projModel.Project{}).Count(&projects).Error)
			assert.Zero(t, projects)

			_, err = e.svc.Finalize(ctx, dto.FinalizeInput{Identifier: tc.identifier, DocumentID: id})
			assert.ErrorIs(t, err, helper.ErrConflict)
		})
	}
}

func TestCreate_OtherDocumentTypesMissingFieldWritesNothing(t *testing.T) {
	for _, tc := range variantCases() {
		for i, field := range tc.required {
			t.Run(tc.identifier+"/"+field, func(t *testing.T) {
				e := newEnv(t, nil)
				number := fmt.Sprintf("%03d/%s/III/2025", i+1, tc.identifier)

				_, err := e.svc.Create(context.Background(), dto.CreateInput{
					Identifier: tc.identifier,
					Payload:    docPayload(t, e.fx, number, tc.fields(e.fx), map[string]any{field: nil}),
				})
				require.ErrorIs(t, err, helper.ErrValidation)
				assert.Equal(t, field, helper.FieldOf(err))

				var masters, rows int64
				require.NoError(t, e.db.Model(&mdModel.MasterDocument{}).Count(&masters).Error)
				require.NoError(t, e.db.Table(tc.table).Count(&rows).Error)
				assert.Zero(t, masters)
				assert.Zero(t, rows)
			})
		}
	}
}

func TestCreate_OfferingLetterUnknownPersonInChargeRollsBack(t *testing.T) {
	e := newEnv(t, nil)
	pwn := variantCases()[0]

	_, err := e.svc.Create(context.Background(), dto.CreateInput{
		Identifier: "Pwn",
		Payload: docPayload(t, e.fx, "010/Pwn/III/2025", pwn.fields(e.fx),
			map[string]any{"person_in_charge_id": uuid.New()}),
	})
	require.ErrorIs(t, err, helper.ErrNotFound)
	assert.Contains(t, err.Error(), "Person in charge")

	var n int64
	require.NoError(t, e.db.Model(&mdModel.MasterDocument{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreate_NonMonthlyBillingTaxes(t *testing.T) {
	e := newEnv(t, nil)
	tagnb := variantCases()[1]
	ctx := context.Background()

	res, err := e.svc.Create(ctx, dto.CreateInput{
		Identifier: "TagNB",
		Payload:    docPayload(t, e.fx, "011/TagNB/III/2025", tagnb.fields(e.fx), nil),
	})
	require.NoError(t, err)

	var row tagnbModel.NonMonthlyBilling
	require.NoError(t, e.db.Where("tagnb_master_document_id = ?", res.Master.MasterDocumentID).Take(&row).Error)
	require.NotNil(t, row.TagNBDPPOtherValue)
	require.NotNil(t, row.TagNBVAT12)
	require.NotNil(t, row.TagNBIncomeTax23)
	require.NotNil(t, row.TagNBTotalBilling)
	assert.True(t, row.TagNBDPPOtherValue.Equal(decimal.NewFromInt(11_000_000)), "dpp: %s", row.TagNBDPPOtherValue)
	assert.True(t, row.TagNBVAT12.Equal(decimal.NewFromInt(1_320_000)), "ppn: %s", row.TagNBVAT12)
	assert.True(t, row.TagNBIncomeTax23.Equal(decimal.NewFromInt(240_000)), "pph: %s", row.TagNBIncomeTax23)
	assert.True(t, row.TagNBTotalBilling.Equal(decimal.NewFromInt(13_080_000)), "total: %s", row.TagNBTotalBilling)

	// nilai pajak yang dikirim klien tidak ditimpa
	res, err = e.svc.Create(ctx, dto.CreateInput{
		Identifier: "TagNB",
		Payload: docPayload(t, e.fx, "012/TagNB/III/2025", tagnb.fields(e.fx),
			map[string]any{"vat_12": "1000000"}),
	})
	require.NoError(t, err)

	var manual tagnbModel.NonMonthlyBilling
	require.NoError(t, e.db.Where("tagnb_master_document_id = ?", res.Master.MasterDocumentID).Take(&manual).Error)
	require.NotNil(t, manual.TagNBVAT12)
	assert.True(t, manual.TagNBVAT12.Equal(decimal.NewFromInt(1_000_000)))
	assert.Nil(t, manual.TagNBDPPOtherValue)
	assert.Nil(t, manual.TagNBTotalBilling)
}

func TestCreate_NonMonthlyBillingWorkAgreementReference(t *testing.T) {
	e := newEnv(t, nil)
	tagnb := variantCases()[1]
	ctx := context.Background()

	_, err := e.svc.Create(ctx, dto.CreateInput{
		Identifier: "TagNB",
		Payload: docPayload(t, e.fx, "013/TagNB/III/2025", tagnb.fields(e.fx),
			map[string]any{"work_agreement_id": uuid.New()}),
	})
	require.ErrorIs(t, err, helper.ErrNotFound)
	assert.Contains(t, err.Error(), "Work agreement")

	var n int64
	require.NoError(t, e.db.Model(&mdModel.MasterDocument{}).Count(&n).Error)
	assert.Zero(t, n)

	spk := createSPK(t, e, "012/SPK/III/2025").Master.MasterDocumentID
	res, err := e.svc.Create(ctx, dto.CreateInput{
		Identifier: "TagNB",
		Payload: docPayload(t, e.fx, "014/TagNB/III/2025", tagnb.fields(e.fx),
			map[string]any{"work_agreement_id": spk}),
	})
	require.NoError(t, err)

	var row tagnbModel.NonMonthlyBilling
	require.NoError(t, e.db.Where("tagnb_master_document_id = ?", res.Master.MasterDocumentID).Take(&row).Error)
	require.NotNil(t, row.TagNBWorkAgreementID)
	assert.Equal(t, spk, *row.TagNBWorkAgreementID)
}
