// file: internals/blobs/open.go
package blobs

import (
	"context"
	"fmt"

	"bantal_backend/internals/configs"
)

// Open memilih driver dari BLOB_DRIVER (mongo | oss | memory)
func Open(ctx context.Context) (Store, error) {
	switch configs.BlobDriver {
	case "", "mongo":
		return NewMongoStore(ctx, configs.MongoURI, configs.MongoDatabase, configs.MongoCollection)
	case "oss":
		return NewOSSStoreFromEnv()
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("BLOB_DRIVER %q tidak dikenal", configs.BlobDriver)
}
