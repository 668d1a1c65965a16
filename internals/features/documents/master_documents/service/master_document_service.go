// file: internals/features/documents/master_documents/service/master_document_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/configs"
	"bantal_backend/internals/constants"
	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	docTypeService "bantal_backend/internals/features/documents/document_types/service"
	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/documents/master_documents/dto"
	"bantal_backend/internals/features/documents/master_documents/model"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/helpers/dbtime"
)

type Service struct {
	DB        *gorm.DB
	Types     *docTypeService.Service
	IndexLock bool
}

func New(db *gorm.DB) *Service {
	return &Service{
		DB:        db,
		Types:     docTypeService.New(db),
		IndexLock: configs.GetEnvBool("DOCUMENT_INDEX_LOCK", true),
	}
}

/* =========================
   Create
   ========================= */

// Create dijalankan di dalam transaksi pemanggil (tx).
func (s *Service) Create(ctx context.Context, tx *gorm.DB, typ *docTypeModel.DocumentType, f dto.CreateFields, blobPointer *string) (*model.MasterDocument, error) {
	db := tx.WithContext(ctx)

	if f.CreatedBy != nil {
		if err := kinds.EnsureExists(db, "identity", "identity_id", *f.CreatedBy, "Identity"); err != nil {
			return nil, err
		}
	}
	if f.DivisionID != nil {
		if err := kinds.EnsureExists(db, "master_division_list", "division_id", *f.DivisionID, "Division"); err != nil {
			return nil, err
		}
	}
	if f.CompanyID != nil {
		if err := kinds.EnsureExists(db, "master_company_list", "company_id", *f.CompanyID, "Company"); err != nil {
			return nil, err
		}
	}

	var n int64
	if err := db.Model(&model.MasterDocument{}).
		Where("master_document_number = ?", f.DocumentNumber).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, helper.Conflict(`Document number "%s" already exists`, f.DocumentNumber)
	}
	if f.ExternalNumber != nil {
		if err := db.Model(&model.MasterDocument{}).
			Where("master_document_external_number = ?", *f.ExternalNumber).
			Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, helper.Conflict(`External number "%s" already exists`, *f.ExternalNumber)
		}
	}

	index := 0
	if f.IndexNumber != nil {
		index = *f.IndexNumber
	} else {
		next, err := s.nextIndex(db, typ.DocumentTypeID, f.CompanyID, f.LegalDate)
		if err != nil {
			return nil, err
		}
		index = next
	}

	m := model.MasterDocument{
		MasterDocumentNumber:         f.DocumentNumber,
		MasterDocumentExternalNumber: f.ExternalNumber,
		MasterDocumentName:           f.Name,
		MasterDocumentLegalDate:      dbtime.DateOnly(f.LegalDate),
		MasterDocumentIndexNumber:    index,
		MasterDocumentStatus:         constants.DocumentStatusDraft,
		MasterDocumentBlobPointer:    blobPointer,
		MasterDocumentIsActive:       true,
		MasterDocumentTypeID:         typ.DocumentTypeID,
		MasterDocumentDivisionID:     f.DivisionID,
		MasterDocumentCompanyID:      f.CompanyID,
		MasterDocumentCreatedBy:      f.CreatedBy,
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	if m.MasterDocumentID == uuid.Nil {
		return nil, helper.Internal("insert master document tidak mengembalikan id", nil)
	}
	m.DocumentType = typ
	return &m, nil
}

// nextIndex: max+1 untuk (type, company, bulan legal). Di PostgreSQL
// diserialisasi dengan advisory lock level transaksi.
func (s *Service) nextIndex(tx *gorm.DB, typeID uint, companyID *uuid.UUID, legal time.Time) (int, error) {
	if s.IndexLock && tx.Dialector.Name() == "postgres" {
		key := fmt.Sprintf("doc-index:%d:%s:%04d-%02d", typeID, companyKey(companyID), legal.Year(), int(legal.Month()))
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return 0, err
		}
	}
	year, month := legal.Year(), int(legal.Month())
	latest, err := latestIndex(tx, typeID, &month, &year, companyID)
	if err != nil {
		return 0, err
	}
	return latest + 1, nil
}

func companyKey(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

/* =========================
   Index lookup
   ========================= */

// GetLatestIndexNumber: indeks tertinggi untuk jenis (by shorthand), bisa
// difilter bulan/tahun tanggal legal dan company. 0 bila belum ada.
func (s *Service) GetLatestIndexNumber(ctx context.Context, shorthand string, month, year *int, companyID *uuid.UUID) (int, error) {
	typ, err := s.Types.FindByShorthand(ctx, shorthand)
	if err != nil {
		return 0, err
	}
	if month != nil && (*month < 1 || *month > 12) {
		return 0, helper.Validation("month", "Month must be between 1 and 12")
	}
	return latestIndex(s.DB.WithContext(ctx), typ.DocumentTypeID, month, year, companyID)
}

func latestIndex(db *gorm.DB, typeID uint, month, year *int, companyID *uuid.UUID) (int, error) {
	q := db.Model(&model.MasterDocument{}).Scopes(model.ScopeByType(typeID))

	switch {
	case year != nil && month != nil:
		q = q.Scopes(model.ScopeLegalPeriod(dbtime.PeriodRange(*year, *month)))
	case year != nil:
		q = q.Scopes(model.ScopeLegalPeriod(dbtime.PeriodRange(*year, 0)))
	case month != nil:
		// bulan tanpa tahun: tahun berjalan (Asia/Jakarta)
		y := time.Now().In(dbtime.JakartaLocation()).Year()
		q = q.Scopes(model.ScopeLegalPeriod(dbtime.PeriodRange(y, *month)))
	}
	if companyID != nil {
		q = q.Where("master_document_company_id = ?", *companyID)
	}

	var latest int
	if err := q.Select("COALESCE(MAX(master_document_index_number), 0)").Scan(&latest).Error; err != nil {
		return 0, err
	}
	return latest, nil
}

/* =========================
   Read
   ========================= */

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*model.MasterDocument, error) {
	return s.find(s.DB.WithContext(ctx).Scopes(model.WithRelations), id)
}

// FindForUpdate: dipakai di dalam transaksi finalisasi/revisi
func (s *Service) FindForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.MasterDocument, error) {
	db := tx.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(forUpdate())
	}
	return s.find(db, id)
}

func (s *Service) find(db *gorm.DB, id uuid.UUID) (*model.MasterDocument, error) {
	var m model.MasterDocument
	err := db.Where("master_document_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(`Document with ID "%s" not found`, id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) List(ctx context.Context, f dto.ListFilter) ([]model.MasterDocument, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.MasterDocument{})
	if f.TypeID != nil {
		q = q.Scopes(model.ScopeByType(*f.TypeID))
	}
	if f.Status != nil {
		q = q.Where("master_document_status = ?", *f.Status)
	}
	if f.CompanyID != nil {
		q = q.Where("master_document_company_id = ?", *f.CompanyID)
	}
	if f.DivisionID != nil {
		q = q.Where("master_document_division_id = ?", *f.DivisionID)
	}
	if f.OnlyActive {
		q = q.Scopes(model.ScopeActive)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(master_document_name) LIKE ? OR LOWER(master_document_number) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.MasterDocument
	if err := q.Scopes(model.WithRelations).
		Order("master_document_legal_date DESC, master_document_index_number DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================
   Mutations
   ========================= */

func (s *Service) SetBlobPointer(ctx context.Context, tx *gorm.DB, id uuid.UUID, pointer string) error {
	res := tx.WithContext(ctx).Model(&model.MasterDocument{}).
		Where("master_document_id = ?", id).
		Update("master_document_blob_pointer", pointer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NotFound(`Document with ID "%s" not found`, id)
	}
	return nil
}

// SetActive: soft delete toggle, dokumen tidak pernah dihapus fisik
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.MasterDocument, error) {
	res := s.DB.WithContext(ctx).Model(&model.MasterDocument{}).
		Where("master_document_id = ?", id).
		Update("master_document_is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.NotFound(`Document with ID "%s" not found`, id)
	}
	return s.FindByID(ctx, id)
}

// UpdateStatus: transisi manual di luar alur finalisasi.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, raw string) (*model.MasterDocument, error) {
	next, ok := constants.ParseDocumentStatus(raw)
	if !ok {
		return nil, helper.Validation("status", "status %q tidak dikenal", raw)
	}
	if next == constants.DocumentStatusFinalized {
		return nil, helper.Validation("status", "gunakan endpoint finalize untuk status FINALIZED")
	}
	if next == constants.DocumentStatusDraft {
		return nil, helper.Validation("status", "dokumen tidak bisa dikembalikan ke DRAFT")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if cur.MasterDocumentStatus.IsTerminal() {
			return helper.Conflict("dokumen berstatus %s tidak bisa diubah", cur.MasterDocumentStatus)
		}
		if !cur.MasterDocumentStatus.CanMoveTo(next) {
			return helper.Conflict("status %s tidak bisa mundur/tetap ke %s", cur.MasterDocumentStatus, next)
		}
		return tx.Model(&model.MasterDocument{}).
			Where("master_document_id = ?", id).
			Update("master_document_status", next).Error
	})
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}
