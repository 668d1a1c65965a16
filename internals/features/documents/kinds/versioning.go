// file: internals/features/documents/kinds/versioning.go
package kinds

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/constants"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	helper "bantal_backend/internals/helpers"
)

const SystemUploader = "system"

// VersionMeta ditanam di setiap tabel jenis dokumen (embeddedPrefix per tabel)
type VersionMeta struct {
	MasterDocumentID uuid.UUID `json:"master_document_id" gorm:"column:master_document_id;type:uuid;not null;index"`
	VersionNumber    int       `json:"version_number"     gorm:"column:version_number;not null"`
	IsLatest         bool      `json:"is_latest"          gorm:"column:is_latest;not null"`
	UploadedBy       string    `json:"uploaded_by"        gorm:"column:uploaded_by;type:varchar(64);not null"`
}

// UploaderFor: pembuat master document, atau "system"
func UploaderFor(master *mdModel.MasterDocument) string {
	if master != nil && master.MasterDocumentCreatedBy != nil && *master.MasterDocumentCreatedBy != uuid.Nil {
		return master.MasterDocumentCreatedBy.String()
	}
	return SystemUploader
}

func FirstVersion(master *mdModel.MasterDocument) VersionMeta {
	return VersionMeta{
		MasterDocumentID: master.MasterDocumentID,
		VersionNumber:    1,
		IsLatest:         true,
		UploadedBy:       UploaderFor(master),
	}
}

// RetireLatest menurunkan flag is_latest versi aktif dan mengembalikan
// nomor versi berikutnya. prefix = embeddedPrefix tabel.
func RetireLatest(tx *gorm.DB, table, prefix string, masterID uuid.UUID) (int, error) {
	var maxVersion int
	if err := tx.Table(table).
		Select("COALESCE(MAX(" + prefix + "version_number), 0)").
		Where(prefix+"master_document_id = ?", masterID).
		Scan(&maxVersion).Error; err != nil {
		return 0, err
	}
	if maxVersion == 0 {
		return 0, helper.NotFound("data %s untuk dokumen %s tidak ditemukan", table, masterID)
	}
	if err := tx.Table(table).
		Where(prefix+"master_document_id = ? AND "+prefix+"is_latest = ?", masterID, true).
		Update(prefix+"is_latest", false).Error; err != nil {
		return 0, err
	}
	return maxVersion + 1, nil
}

// LatestOf memuat baris is_latest=true ke dst
func LatestOf(ctx context.Context, db *gorm.DB, dst any, prefix, label string, masterID uuid.UUID) error {
	err := db.WithContext(ctx).
		Where(prefix+"master_document_id = ? AND "+prefix+"is_latest = ?", masterID, true).
		Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.NotFound(`%s data for document with ID "%s" not found`, label, masterID)
	}
	return err
}

// MarkFinalized memindahkan master ke FINALIZED. Update bersyarat supaya
// finalisasi ganda yang berbarengan tetap ditolak.
func MarkFinalized(tx *gorm.DB, master *mdModel.MasterDocument, in FinalizeInput) error {
	now := time.Now().UTC()
	attachments, err := json.Marshal(nonNil(in.Attachments))
	if err != nil {
		return err
	}

	updates := map[string]any{
		"master_document_status":            constants.DocumentStatusFinalized,
		"master_document_physical_delivery": in.PhysicalDelivery,
		"master_document_attachments":       string(attachments),
		"master_document_finalized_at":      now,
	}
	if in.Summary != "" {
		updates["master_document_finalization_summary"] = in.Summary
	}

	res := tx.Model(&mdModel.MasterDocument{}).
		Where("master_document_id = ? AND master_document_status NOT IN ?", master.MasterDocumentID, []constants.DocumentStatus{
			constants.DocumentStatusFinalized,
			constants.DocumentStatusCancelled,
			constants.DocumentStatusRejected,
		}).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.Conflict("dokumen %s sudah berstatus final", master.MasterDocumentID)
	}

	master.MasterDocumentStatus = constants.DocumentStatusFinalized
	master.MasterDocumentPhysicalDelivery = in.PhysicalDelivery
	master.MasterDocumentAttachments = attachments
	master.MasterDocumentFinalizedAt = &now
	if in.Summary != "" {
		s := in.Summary
		master.MasterDocumentFinalizationSummary = &s
	}
	return nil
}

func FinalizedMessage(h Handler) string {
	return h.DisplayName() + " document has been successfully finalized"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
