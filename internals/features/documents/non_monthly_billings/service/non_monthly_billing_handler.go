// file: internals/features/documents/non_monthly_billings/service/non_monthly_billing_handler.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	"bantal_backend/internals/features/documents/non_monthly_billings/model"
	helper "bantal_backend/internals/helpers"
)

const displayName = "Surat Tagihan Non Bulanan"

type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) Kind() kinds.Kind     { return kinds.KindNonMonthlyBilling }
func (h *Handler) DisplayName() string { return displayName }

func (h *Handler) Decode(raw []byte) (kinds.Variant, error) {
	var v kinds.NonMonthlyBilling
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
		return helper.Validation("client_id", "Client ID is required for SuratTagihanNonBulanan")
	case kinds.Blank(p.DocumentDescription):
		return helper.Validation("document_description", "Document description is required for SuratTagihanNonBulanan")
	case p.ContractValue != nil && p.ContractValue.IsNegative():
		return helper.Validation("contract_value", "Contract value tidak boleh negatif")
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
	if !kinds.MissingUUID(p.WorkAgreementID) {
		if err := kinds.EnsureExists(db, "master_document_list", "master_document_id", *p.WorkAgreementID, "Work agreement"); err != nil {
			return nil, err
		}
	}

	row := model.NonMonthlyBilling{
		VersionMeta:              meta,
		TagNBClientID:            *p.ClientID,
		TagNBDocumentDescription: p.DocumentDescription,
		TagNBContractValue:       p.ContractValue,
		TagNBDPPOtherValue:       p.DPPOtherValue,
		TagNBVAT12:               p.VAT12,
		TagNBIncomeTax23:         p.IncomeTax23,
		TagNBTotalBilling:        p.TotalBilling,
		TagNBBankInfo:            p.BankInfo,
	}
	if !kinds.MissingUUID(p.WorkAgreementID) {
		row.TagNBWorkAgreementID = p.WorkAgreementID
	}
	fillTaxes(&row)

	if err := db.Create(&row).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return &row, nil
}

// fillTaxes hanya mengisi bila semua kolom pajak kosong
func fillTaxes(row *model.NonMonthlyBilling) {
	if row.TagNBContractValue == nil {
		return
	}
	if row.TagNBDPPOtherValue != nil || row.TagNBVAT12 != nil || row.TagNBIncomeTax23 != nil || row.TagNBTotalBilling != nil {
		return
	}
	t := ComputeTaxes(*row.TagNBContractValue)
	row.TagNBDPPOtherValue = &t.DPPOtherValue
	row.TagNBVAT12 = &t.VAT12
	row.TagNBIncomeTax23 = &t.IncomeTax23
	row.TagNBTotalBilling = &t.TotalBilling
}

func (h *Handler) Latest(ctx context.Context, db *gorm.DB, masterID uuid.UUID) (kinds.Row, error) {
	var row model.NonMonthlyBilling
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

func payload(v kinds.Variant) (kinds.NonMonthlyBilling, error) {
	switch p := v.(type) {
	case kinds.NonMonthlyBilling:
		return p, nil
	case *kinds.NonMonthlyBilling:
		if p != nil {
			return *p, nil
		}
	}
	return kinds.NonMonthlyBilling{}, helper.Validation("payload", "payload bukan %s", displayName)
}
