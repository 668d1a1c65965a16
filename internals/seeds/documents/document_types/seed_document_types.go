package document_types

import (
	_ "embed"
	"encoding/json"
	"log"
	"strings"

	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/document_types/model"
)

//go:embed data_document_types.json
var defaultData []byte

type DocumentTypeSeed struct {
	Name      string `json:"document_type_name"`
	Shorthand string `json:"document_type_shorthand"`
	Handler   string `json:"document_type_handler"`
}

// SeedDocumentTypes: idempotent, baris yang sudah ada (nama/shorthand) dilewati
func SeedDocumentTypes(db *gorm.DB) error {
	var inputs []DocumentTypeSeed
	if err := json.Unmarshal(defaultData, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		var n int64
		if err := db.Model(&model.DocumentType{}).
			Where("LOWER(document_type_name) = ? OR LOWER(document_type_shorthand) = ?",
				strings.ToLower(data.Name), strings.ToLower(data.Shorthand)).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("ℹ️ Document type '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		row := model.DocumentType{
			DocumentTypeName:      data.Name,
			DocumentTypeShorthand: data.Shorthand,
		}
		if k := model.HandlerKey(data.Handler); k.Valid() {
			row.DocumentTypeHandler = &k
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert document type '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Document type '%s' (%s) ditambahkan.", data.Name, data.Shorthand)
	}
	return nil
}
