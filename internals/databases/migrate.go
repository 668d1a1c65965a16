// file: internals/databases/migrate.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"bantal_backend/internals/configs"
	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	tagnbModel "bantal_backend/internals/features/documents/non_monthly_billings/model"
	spModel "bantal_backend/internals/features/documents/offering_letters/model"
	spkModel "bantal_backend/internals/features/documents/work_agreements/model"
	identityModel "bantal_backend/internals/features/identities/identity/model"
	clientModel "bantal_backend/internals/features/masters/clients/model"
	companyModel "bantal_backend/internals/features/masters/companies/model"
	divisionModel "bantal_backend/internals/features/masters/divisions/model"
	msModel "bantal_backend/internals/features/pekerjaan/milestones/model"
	payModel "bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
)

// Models: urutan mengikuti FK (master dulu, turunan belakangan)
func Models() []any {
	return []any{
		&identityModel.Identity{},
		&companyModel.Company{},
		&divisionModel.Division{},
		&clientModel.ClientType{},
		&clientModel.Client{},
		&docTypeModel.DocumentType{},
		&mdModel.MasterDocument{},
		&spModel.OfferingLetter{},
		&spkModel.WorkAgreement{},
		&tagnbModel.NonMonthlyBilling{},
		&projModel.Project{},
		&msModel.Milestone{},
		&payModel.Installment{},
	}
}

// tabel varian: satu baris is_latest per master document
var latestIndexes = []struct{ Table, Prefix string }{
	{spModel.TableName, spModel.Prefix},
	{spkModel.TableName, spkModel.Prefix},
	{tagnbModel.TableName, tagnbModel.Prefix},
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, t := range latestIndexes {
		stmt := fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_%s_latest ON %s (%smaster_document_id) WHERE %sis_latest`,
			t.Table, t.Table, t.Prefix, t.Prefix,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index is_latest %s: %w", t.Table, err)
		}
	}
	return nil
}

// AutoMigrate dijalankan hanya bila DB_AUTO_MIGRATE=true
func AutoMigrate() {
	if !configs.GetEnvBool("DB_AUTO_MIGRATE", false) {
		log.Println("ℹ️ DB_AUTO_MIGRATE nonaktif, skip migrasi")
		return
	}
	if err := Migrate(DB); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
