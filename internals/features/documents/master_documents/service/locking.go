// file: internals/features/documents/master_documents/service/locking.go
package service

import "gorm.io/gorm/clause"

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
