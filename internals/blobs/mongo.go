// file: internals/blobs/mongo.go
package blobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bantal_backend/internals/metrics"
)

const appendRetries = 5

// blobDocument: satu dokumen per pointer, versi disimpan sebagai array
type blobDocument struct {
	ID        string    `bson:"_id"`
	Versions  []Version `bson:"versions"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Printf("[BLOB] mongo terhubung: %s.%s", database, collection)
	return NewMongoStoreFromCollection(client, client.Database(database).Collection(collection)), nil
}

func NewMongoStoreFromCollection(client *mongo.Client, coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: client, coll: coll}
}

func (s *MongoStore) Driver() string { return "mongo" }

func (s *MongoStore) Store(ctx context.Context, content []byte, mimeType string) (string, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	doc := blobDocument{
		ID:        uuid.NewString(),
		Versions:  []Version{{Number: 1, Content: content, MimeType: mimeType, Size: int64(len(content)), UploadedAt: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("mongo insert blob: %w", err)
	}
	metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
	return doc.ID, nil
}

// AppendVersion memakai guard $size supaya nomor versi tetap rapat saat
// ada penulis lain di pointer yang sama.
func (s *MongoStore) AppendVersion(ctx context.Context, pointer string, content []byte, mimeType string) (int, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return 0, err
	}

	for attempt := 0; attempt < appendRetries; attempt++ {
		infos, err := s.ListVersions(ctx, pointer)
		if err != nil {
			return 0, err
		}
		count := len(infos)
		now := time.Now().UTC()
		v := Version{Number: count + 1, Content: content, MimeType: mimeType, Size: int64(len(content)), UploadedAt: now}

		res, err := s.coll.UpdateOne(ctx,
			bson.M{"_id": pointer, "versions": bson.M{"$size": count}},
			bson.M{
				"$push": bson.M{"versions": v},
				"$set":  bson.M{"updatedAt": now},
			},
		)
		if err != nil {
			return 0, fmt.Errorf("mongo append blob: %w", err)
		}
		if res.MatchedCount == 1 {
			metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
			return v.Number, nil
		}
	}
	return 0, fmt.Errorf("mongo append blob %s: terlalu banyak penulis bersamaan", pointer)
}

func (s *MongoStore) GetLatestVersion(ctx context.Context, pointer string) (*Version, error) {
	var doc blobDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": pointer},
		options.FindOne().SetProjection(bson.M{"versions": bson.M{"$slice": -1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(pointer)
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get blob: %w", err)
	}
	if len(doc.Versions) == 0 {
		return nil, notFound(pointer)
	}
	v := doc.Versions[0]
	return &v, nil
}

func (s *MongoStore) ListVersions(ctx context.Context, pointer string) ([]VersionInfo, error) {
	var doc blobDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": pointer},
		options.FindOne().SetProjection(bson.M{"versions.content": 0}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(pointer)
	}
	if err != nil {
		return nil, fmt.Errorf("mongo list blob: %w", err)
	}
	out := make([]VersionInfo, 0, len(doc.Versions))
	for _, v := range doc.Versions {
		out = append(out, v.Info())
	}
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
