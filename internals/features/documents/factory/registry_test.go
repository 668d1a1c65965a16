package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	"bantal_backend/internals/features/documents/factory"
	"bantal_backend/internals/features/documents/kinds"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

func TestResolve_BeforeBuild(t *testing.T) {
	reg := factory.NewRegistry(nil)

	_, err := reg.Resolve("SPK")

	assert.ErrorIs(t, err, helper.ErrInternal)
}

func TestResolve_NameAndShorthand(t *testing.T) {
	db := testutil.NewDB(t)
	reg := factory.NewRegistry(projectService.New(db))
	require.NoError(t, reg.Build(context.Background(), db))

	cases := map[string]kinds.Kind{
		"SPK":                       kinds.KindWorkAgreement,
		"spk":                       kinds.KindWorkAgreement,
		" Surat Perjanjian Kerja ":  kinds.KindWorkAgreement,
		"Pwn":                       kinds.KindOfferingLetter,
		"surat penawaran":           kinds.KindOfferingLetter,
		"TAGNB":                     kinds.KindNonMonthlyBilling,
		"Surat Tagihan Non Bulanan": kinds.KindNonMonthlyBilling,
	}
	for id, want := range cases {
		e, err := reg.Resolve(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, e.Handler.Kind(), id)
	}

	spk, err := reg.Resolve("SPK")
	require.NoError(t, err)
	byID, err := reg.ResolveByTypeID(spk.Type.DocumentTypeID)
	require.NoError(t, err)
	assert.Equal(t, "Surat Perjanjian Kerja", byID.Type.DocumentTypeName)
}

func TestResolve_Errors(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&docTypeModel.DocumentType{
		DocumentTypeName:      "Berita Acara",
		DocumentTypeShorthand: "BA",
	}).Error)

	reg := factory.NewRegistry(projectService.New(db))
	require.NoError(t, reg.Build(context.Background(), db))

	_, err := reg.Resolve("   ")
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = reg.Resolve("Memo Internal")
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = reg.Resolve("ba")
	require.ErrorIs(t, err, helper.ErrNotFound)
	assert.Contains(t, err.Error(), "No handler registered")

	_, err = reg.ResolveByTypeID(9999)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestReload_PicksUpNewTypes(t *testing.T) {
	db := testutil.NewDB(t)
	reg := factory.NewRegistry(projectService.New(db))
	require.NoError(t, reg.Build(context.Background(), db))

	key := docTypeModel.HandlerOfferingLetter
	require.NoError(t, db.Create(&docTypeModel.DocumentType{
		DocumentTypeName:      "Surat Penawaran Lanjutan",
		DocumentTypeShorthand: "PwnL",
		DocumentTypeHandler:   &key,
	}).Error)

	_, err := reg.Resolve("PwnL")
	assert.ErrorIs(t, err, helper.ErrNotFound)

	require.NoError(t, reg.Reload(context.Background(), db))
	e, err := reg.Resolve("pwnl")
	require.NoError(t, err)
	assert.Equal(t, kinds.KindOfferingLetter, e.Handler.Kind())
}
