// file: internals/features/documents/kinds/lookup.go
package kinds

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bantal_backend/internals/helpers"
)

// EnsureExists: NotFound bila tidak ada baris dengan pk = id di tabel
func EnsureExists(tx *gorm.DB, table, pk string, id uuid.UUID, label string) error {
	var n int64
	if err := tx.Table(table).Where(pk+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound(`%s with ID "%s" not found`, label, id)
	}
	return nil
}

// DecodeJSON dipakai semua handler; body rusak = Validation
func DecodeJSON(raw []byte, dst any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return helper.Validation("payload", "payload dokumen kosong")
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return helper.Validation("payload", "payload dokumen tidak valid: %v", err)
	}
	return nil
}

func Blank(s string) bool { return strings.TrimSpace(s) == "" }

func MissingUUID(id *uuid.UUID) bool { return id == nil || *id == uuid.Nil }
