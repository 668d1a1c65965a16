package seeds

import (
	"log"

	"gorm.io/gorm"

	"bantal_backend/internals/configs"
	documentTypes "bantal_backend/internals/seeds/documents/document_types"
	clientTypes "bantal_backend/internals/seeds/masters/client_types"
)

// RunAllSeeds: data referensi minimum agar dispatcher dokumen bisa dibangun.
// Nonaktifkan dengan DB_SEED=false.
func RunAllSeeds(db *gorm.DB) {
	if !configs.GetEnvBool("DB_SEED", true) {
		return
	}

	//* Document types
	if err := documentTypes.SeedDocumentTypes(db); err != nil {
		log.Printf("❌ Seed document type gagal: %v", err)
	}

	//* Client types
	if err := clientTypes.SeedClientTypes(db); err != nil {
		log.Printf("❌ Seed client type gagal: %v", err)
	}
}
