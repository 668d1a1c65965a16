// file: internals/features/documents/work_agreements/service/work_agreement_handler.go
package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	"bantal_backend/internals/features/documents/work_agreements/model"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/helpers/dbtime"
	"bantal_backend/internals/metrics"
)

const displayName = "Surat Perjanjian Kerja"

type Handler struct {
	Spawner kinds.ProjectSpawner
}

func New(spawner kinds.ProjectSpawner) *Handler { return &Handler{Spawner: spawner} }

func (h *Handler) Kind() kinds.Kind     { return kinds.KindWorkAgreement }
func (h *Handler) DisplayName() string { return displayName }

func (h *Handler) Decode(raw []byte) (kinds.Variant, error) {
	var v kinds.WorkAgreement
	if err := kinds.DecodeJSON(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// parsed: payload yang sudah lolos validasi
type parsed struct {
	kinds.WorkAgreement
	start time.Time
	end   *time.Time
}

func (h *Handler) Validate(v kinds.Variant) error {
	_, err := h.check(v)
	return err
}

func (h *Handler) check(v kinds.Variant) (*parsed, error) {
	p, err := payload(v)
	if err != nil {
		return nil, err
	}
	if kinds.MissingUUID(p.ClientID) {
		return nil, helper.Validation("client_id", "Client ID is required for SuratPerjanjianKerja")
	}
	if kinds.Blank(p.DocumentDescription) {
		return nil, helper.Validation("document_description", "Document description is required for SuratPerjanjianKerja")
	}
	if kinds.Blank(p.StartDate) {
		return nil, helper.Validation("start_date", "Start date is required for SuratPerjanjianKerja")
	}
	start, err := dbtime.ParseDate(p.StartDate)
	if err != nil {
		return nil, helper.Validation("start_date", "Start date tidak valid: %s", p.StartDate)
	}
	var end *time.Time
	if p.EndDate != nil && !kinds.Blank(*p.EndDate) {
		e, err := dbtime.ParseDate(*p.EndDate)
		if err != nil {
			return nil, helper.Validation("end_date", "End date tidak valid: %s", *p.EndDate)
		}
		end = &e
	}
	if p.ProjectFee == nil {
		return nil, helper.Validation("project_fee", "Project fee is required for SuratPerjanjianKerja")
	}
	if !p.ProjectFee.IsPositive() {
		return nil, helper.Validation("project_fee", "Project fee must be greater than 0")
	}
	if p.PaymentInstallment <= 0 {
		return nil, helper.Validation("payment_installment", "Payment installment must be greater than 0")
	}
	if end != nil && start.After(*end) {
		return nil, helper.Validation("end_date", "Start date must be before end date")
	}
	if p.BillingCadence != nil && !kinds.Blank(*p.BillingCadence) {
		c := kinds.BillingCadence(strings.ToLower(strings.TrimSpace(*p.BillingCadence)))
		if !c.Valid() {
			return nil, helper.Validation("billing_cadence", "billing_cadence harus monthly atau non_monthly")
		}
		s := string(c)
		p.BillingCadence = &s
	} else {
		p.BillingCadence = nil
	}
	return &parsed{WorkAgreement: p, start: start, end: end}, nil
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
	p, err := h.check(v)
	if err != nil {
		return nil, err
	}
	db := tx.WithContext(ctx)
	if err := kinds.EnsureExists(db, "master_client_list", "client_id", *p.ClientID, "Client"); err != nil {
		return nil, err
	}

	row := model.WorkAgreement{
		VersionMeta:            meta,
		SPKClientID:            *p.ClientID,
		SPKDocumentDescription: p.DocumentDescription,
		SPKStartDate:           p.start,
		SPKEndDate:             p.end,
		SPKProjectFee:          *p.ProjectFee,
		SPKPaymentInstallment:  p.PaymentInstallment,
		SPKIsIncludeVAT:        p.IsIncludeVAT,
		SPKBillingCadence:      p.BillingCadence,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return &row, nil
}

func (h *Handler) Latest(ctx context.Context, db *gorm.DB, masterID uuid.UUID) (kinds.Row, error) {
	var row model.WorkAgreement
	if err := kinds.LatestOf(ctx, db, &row, model.Prefix, displayName, masterID); err != nil {
		return nil, err
	}
	return &row, nil
}

// Finalize: status FINALIZED lalu buat tepat satu pekerjaan dari SPK ini
func (h *Handler) Finalize(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, in kinds.FinalizeInput) (*kinds.FinalizeResult, error) {
	latest, err := h.Latest(ctx, tx, master.MasterDocumentID)
	if err != nil {
		return nil, err
	}
	row := latest.(*model.WorkAgreement)

	if err := kinds.MarkFinalized(tx.WithContext(ctx), master, in); err != nil {
		return nil, err
	}
	if h.Spawner == nil {
		return nil, helper.Internal("project spawner belum dikonfigurasi", nil)
	}

	cadence := ClassifyCadence(row)
	projectID, err := h.Spawner.SpawnFromWorkAgreement(ctx, tx, kinds.SpawnInput{
		SourceDocumentID: master.MasterDocumentID,
		ProjectName:      master.MasterDocumentName,
		Description:      row.SPKDocumentDescription,
		Cadence:          cadence,
		ProjectFee:       row.SPKProjectFee,
		IncludeVAT:       row.SPKIsIncludeVAT,
	})
	if err != nil {
		return nil, err
	}
	metrics.ProjectsSpawned.WithLabelValues(string(cadence)).Inc()
	log.Printf("[FINALIZE] SPK %s difinalisasi, pekerjaan %s (%s)", master.MasterDocumentID, projectID, cadence)

	return &kinds.FinalizeResult{
		Message:   kinds.FinalizedMessage(h),
		ProjectID: &projectID,
		Cadence:   string(cadence),
	}, nil
}

func payload(v kinds.Variant) (kinds.WorkAgreement, error) {
	switch p := v.(type) {
	case kinds.WorkAgreement:
		return p, nil
	case *kinds.WorkAgreement:
		if p != nil {
			return *p, nil
		}
	}
	return kinds.WorkAgreement{}, helper.Validation("payload", "payload bukan %s", displayName)
}
