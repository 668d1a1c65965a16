// file: internals/blobs/store.go
//
// Penyimpanan isi file dokumen. Setiap pointer menyimpan daftar versi yang
// hanya bisa ditambah (append-only); pembaca selalu melihat versi utuh.
package blobs

import (
	"context"
	"strings"
	"time"

	helper "bantal_backend/internals/helpers"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

type Version struct {
	Number     int       `json:"version_number"  bson:"versionNumber"`
	Content    []byte    `json:"-"               bson:"content"`
	MimeType   string    `json:"mime_type"       bson:"mimeType"`
	Size       int64     `json:"size"            bson:"size"`
	UploadedAt time.Time `json:"uploaded_at"     bson:"uploadedAt"`
}

type VersionInfo struct {
	Number     int       `json:"version_number"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Store interface {
	// Store membuat pointer baru dengan satu versi (versi 1)
	Store(ctx context.Context, content []byte, mimeType string) (string, error)
	AppendVersion(ctx context.Context, pointer string, content []byte, mimeType string) (int, error)
	GetLatestVersion(ctx context.Context, pointer string) (*Version, error)
	ListVersions(ctx context.Context, pointer string) ([]VersionInfo, error)
	Driver() string
	Close(ctx context.Context) error
}

const defaultMime = "application/octet-stream"

func checkContent(content []byte, mimeType string) (string, error) {
	if len(content) == 0 {
		return "", helper.Validation("file", "isi file kosong")
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = defaultMime
	}
	return mimeType, nil
}

func notFound(pointer string) error {
	return helper.NotFound(`Blob "%s" not found`, pointer)
}

func (v Version) Info() VersionInfo {
	return VersionInfo{Number: v.Number, MimeType: v.MimeType, Size: v.Size, UploadedAt: v.UploadedAt}
}
