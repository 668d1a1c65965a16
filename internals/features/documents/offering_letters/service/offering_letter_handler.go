// file: internals/features/documents/offering_letters/service/offering_letter_handler.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	"bantal_backend/internals/features/documents/offering_letters/model"
	helper "bantal_backend/internals/helpers"
)

const displayName = "Surat Penawaran"

type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) Kind() kinds.Kind     { return kinds.KindOfferingLetter }
func (h *Handler) DisplayName() string { return displayName }

func (h *Handler) Decode(raw []byte) (kinds.Variant, error) {
	var v kinds.OfferingLetter
	if err := kinds.DecodeJSON(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (h *Handler) Validate(v kinds.Variant) error {
	p, err := payload(v)
	if err != nil {
		return err
	}
	switch {
	case kinds.MissingUUID(p.ClientID):
		return helper.Validation("client_id", "Client ID is required for SuratPenawaran")
	case kinds.Blank(p.DocumentDescription):
		return helper.Validation("document_description", "Document description is required for SuratPenawaran")
	case kinds.Blank(p.OfferedService):
		return helper.Validation("offered_service", "Offered service is required for SuratPenawaran")
	case kinds.MissingUUID(p.PersonInChargeID):
		return helper.Validation("person_in_charge_id", "Person in charge is required for SuratPenawaran")
	}
	return nil
}

func (h *Handler) Create(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, v kinds.Variant) (kinds.Row, error) {
	return h.insert(ctx, tx, v, kinds.FirstVersion(master))
}

func (h *Handler) Revise(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, v kinds.Variant) (kinds.Row, error) {
	next, err := kinds.RetireLatest(tx.WithContext(ctx), model.TableName, model.Prefix, master.MasterDocumentID)
	if err != nil {
		return nil, err
	}
	meta := kinds.FirstVersion(master)
	meta.VersionNumber = next
	return h.insert(ctx, tx, v, meta)
}

func (h *Handler) insert(ctx context.Context, tx *gorm.DB, v kinds.Variant, meta kinds.VersionMeta) (kinds.Row, error) {
	if err := h.Validate(v); err != nil {
		return nil, err
	}
	p, _ := payload(v)
	db := tx.WithContext(ctx)
	if err := kinds.EnsureExists(db, "master_client_list", "client_id", *p.ClientID, "Client"); err != nil {
		return nil, err
	}
	if err := kinds.EnsureExists(db, "identity", "identity_id", *p.PersonInChargeID, "Person in charge"); err != nil {
		return nil, err
	}

	row := model.OfferingLetter{
		VersionMeta:                       meta,
		SuratPenawaranClientID:            *p.ClientID,
		SuratPenawaranDocumentDescription: p.DocumentDescription,
		SuratPenawaranOfferedService:      p.OfferedService,
		SuratPenawaranPersonInChargeID:    *p.PersonInChargeID,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return &row, nil
}

func (h *Handler) Latest(ctx context.Context, db *gorm.DB, masterID uuid.UUID) (kinds.Row, error) {
	var row model.OfferingLetter
	if err := kinds.LatestOf(ctx, db, &row, model.Prefix, displayName, masterID); err != nil {
		return nil, err
	}
	return &row, nil
}

func (h *Handler) Finalize(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, in kinds.FinalizeInput) (*kinds.FinalizeResult, error) {
	if _, err := h.Latest(ctx, tx, master.MasterDocumentID); err != nil {
		return nil, err
	}
	if err := kinds.MarkFinalized(tx.WithContext(ctx), master, in); err != nil {
		return nil, err
	}
	log.Printf("[FINALIZE] %s %s difinalisasi", displayName, master.MasterDocumentID)
	return &kinds.FinalizeResult{Message: kinds.FinalizedMessage(h)}, nil
}

func payload(v kinds.Variant) (kinds.OfferingLetter, error) {
	switch p := v.(type) {
	case kinds.OfferingLetter:
		return p, nil
	case *kinds.OfferingLetter:
		if p != nil {
			return *p, nil
		}
	}
	return kinds.OfferingLetter{}, helper.Validation("payload", "payload bukan %s", displayName)
}
