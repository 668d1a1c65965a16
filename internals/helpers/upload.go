// file: internals/helpers/upload.go
package helper

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bantal_backend/internals/constants"
)

// batas ukuran satu file dokumen
const MaxUploadSize = int64(10 * 1024 * 1024)

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// Default kandidat nama field file
var defaultFileFieldCandidates = []string{"files[]", "files", "file", "attachments[]", "attachments"}

// CollectUploadFiles mengumpulkan *FileHeader dari form multipart sesuai
// urutan kandidat field.
func CollectUploadFiles(form *multipart.Form, candidates ...string) []*multipart.FileHeader {
	if form == nil || form.File == nil {
		return nil
	}
	if len(candidates) == 0 {
		candidates = defaultFileFieldCandidates
	}
	var out []*multipart.FileHeader
	for _, key := range candidates {
		for _, fh := range form.File[key] {
			if fh != nil && fh.Filename != "" {
				out = append(out, fh)
			}
		}
	}
	return out
}

// ReadUpload membaca isi file dan menentukan MIME (header part, lalu ekstensi/sniff).
func ReadUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh == nil {
		return nil, "", Validation("file", "file tidak ditemukan")
	}
	if fh.Size > MaxUploadSize {
		return nil, "", Validation("file", "ukuran file %s melebihi %d MB", fh.Filename, MaxUploadSize/(1024*1024))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", Validation("file", "file %s tidak bisa dibuka", fh.Filename)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(content)) > MaxUploadSize {
		return nil, "", Validation("file", "ukuran file %s melebihi %d MB", fh.Filename, MaxUploadSize/(1024*1024))
	}

	ct := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if ct == "" || ct == constants.MimeBin {
		ct = constants.DetectMimeType(fh.Filename, content)
	}
	return content, ct, nil
}
