// file: internals/blobs/memory.go
package blobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bantal_backend/internals/metrics"
)

// MemoryStore: driver proses-lokal (BLOB_DRIVER=memory, dan untuk test)
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]Version
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]Version{}, now: time.Now}
}

func (s *MemoryStore) Driver() string { return "memory" }

func (s *MemoryStore) Store(ctx context.Context, content []byte, mimeType string) (string, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return "", err
	}
	pointer := uuid.NewString()

	s.mu.Lock()
	s.docs[pointer] = []Version{s.version(1, content, mimeType)}
	s.mu.Unlock()

	metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
	return pointer, nil
}

func (s *MemoryStore) AppendVersion(ctx context.Context, pointer string, content []byte, mimeType string) (int, error) {
	mimeType, err := checkContent(content, mimeType)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	versions, ok := s.docs[pointer]
	if !ok {
		return 0, notFound(pointer)
	}
	next := len(versions) + 1
	s.docs[pointer] = append(versions, s.version(next, content, mimeType))

	metrics.BlobVersionsStored.WithLabelValues(s.Driver()).Inc()
	return next, nil
}

func (s *MemoryStore) GetLatestVersion(ctx context.Context, pointer string) (*Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	versions, ok := s.docs[pointer]
	if !ok || len(versions) == 0 {
		return nil, notFound(pointer)
	}
	v := versions[len(versions)-1]
	v.Content = append([]byte(nil), v.Content...)
	return &v, nil
}

func (s *MemoryStore) ListVersions(ctx context.Context, pointer string) ([]VersionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	versions, ok := s.docs[pointer]
	if !ok {
		return nil, notFound(pointer)
	}
	out := make([]VersionInfo, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.Info())
	}
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

func (s *MemoryStore) version(n int, content []byte, mimeType string) Version {
	return Version{
		Number:     n,
		Content:    append([]byte(nil), content...),
		MimeType:   mimeType,
		Size:       int64(len(content)),
		UploadedAt: s.now().UTC(),
	}
}
