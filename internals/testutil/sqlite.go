// file: internals/testutil/sqlite.go
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "bantal_backend/internals/databases"
	identityModel "bantal_backend/internals/features/identities/identity/model"
	clientModel "bantal_backend/internals/features/masters/clients/model"
	companyModel "bantal_backend/internals/features/masters/companies/model"
	documentTypes "bantal_backend/internals/seeds/documents/document_types"
)

// NewDB membuka SQLite in-memory (satu koneksi, jadi tetap satu database)
// dengan skema lengkap dan document type bawaan.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, documentTypes.SeedDocumentTypes(db))
	return db
}

type Fixtures struct {
	Identity identityModel.Identity
	Company  companyModel.Company
	Client   clientModel.Client
}

// SeedFixtures membuat identity, company, dan client minimal untuk dokumen
func SeedFixtures(t testing.TB, db *gorm.DB) Fixtures {
	t.Helper()

	id := uuid.NewString()[:8]
	f := Fixtures{
		Identity: identityModel.Identity{
			IdentityExternalID: "ext-" + id,
			IdentityEmail:      id + "@bantal.test",
			IdentityName:       "Tester " + id,
			IdentityRole:       "manager",
		},
		Company: companyModel.Company{
			CompanyCode: "C" + id,
			CompanyName: "PT Uji " + id,
		},
	}
	require.NoError(t, db.Create(&f.Identity).Error)
	require.NoError(t, db.Create(&f.Company).Error)

	ct := clientModel.ClientType{ClientTypeName: "Swasta " + id}
	require.NoError(t, db.Create(&ct).Error)
	f.Client = clientModel.Client{
		ClientName:         "Klien " + id,
		ClientTypeID:       ct.ClientTypeID,
		ClientContactName:  "Budi",
		ClientContactEmail: "budi@" + id + ".test",
		ClientContactPhone: "0811",
	}
	require.NoError(t, db.Create(&f.Client).Error)
	return f
}
