package constants

import (
	"net/http"
	"path/filepath"
	"strings"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeBin  = "application/octet-stream"
)

// DetectMimeType resolves the mime type of an uploaded document, preferring
// the extension and falling back to content sniffing.
func DetectMimeType(filename string, head []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".doc":
		return MimeDOC
	case ".xlsx":
		return MimeXLSX
	case ".png":
		return MimePNG
	case ".jpg", ".jpeg":
		return MimeJPEG
	}
	if len(head) == 0 {
		return MimeBin
	}
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
