package client_types

import (
	_ "embed"
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"bantal_backend/internals/features/masters/clients/model"
)

//go:embed data_client_types.json
var defaultData []byte

type ClientTypeSeed struct {
	Name        string  `json:"client_type_name"`
	Description *string `json:"client_type_description"`
}

func SeedClientTypes(db *gorm.DB) error {
	var inputs []ClientTypeSeed
	if err := json.Unmarshal(defaultData, &inputs); err != nil {
		return err
	}
	for _, data := range inputs {
		var existing model.ClientType
		if err := db.Where("client_type_name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}
		row := model.ClientType{ClientTypeName: data.Name, ClientTypeDescription: data.Description}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert client type '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Client type '%s' ditambahkan.", data.Name)
	}
	return nil
}
