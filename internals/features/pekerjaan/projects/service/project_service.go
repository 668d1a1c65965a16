// file: internals/features/pekerjaan/projects/service/project_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/pekerjaan/completion"
	"bantal_backend/internals/features/pekerjaan/projects/dto"
	"bantal_backend/internals/features/pekerjaan/projects/model"
	helper "bantal_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

var _ kinds.ProjectSpawner = (*Service)(nil)

// SpawnFromWorkAgreement membuat pekerjaan dari SPK yang baru difinalisasi.
// Satu SPK hanya boleh menghasilkan satu pekerjaan.
func (s *Service) SpawnFromWorkAgreement(ctx context.Context, tx *gorm.DB, in kinds.SpawnInput) (uuid.UUID, error) {
	db := tx.WithContext(ctx)

	var n int64
	if err := db.Model(&model.Project{}).Where("pekerjaan_spk_id = ?", in.SourceDocumentID).Count(&n).Error; err != nil {
		return uuid.Nil, helper.Internal("gagal cek pekerjaan", err)
	}
	if n > 0 {
		return uuid.Nil, helper.Conflict("Project for document %s already exists", in.SourceDocumentID)
	}

	cadence := in.Cadence
	if !cadence.Valid() {
		cadence = kinds.CadenceNonMonthly
	}
	fee := in.ProjectFee
	p := model.Project{
		PekerjaanProjectName:    strings.TrimSpace(in.ProjectName),
		PekerjaanSPKID:          in.SourceDocumentID,
		PekerjaanBillingCadence: string(cadence),
		PekerjaanProjectFee:     &fee,
		PekerjaanCurrency:       model.DefaultCurrency,
		PekerjaanIncludeVAT:     in.IncludeVAT,
		PekerjaanCreationStatus: model.CreationCreated,
		PekerjaanProgressStatus: model.ProgressNotStarted,
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		p.PekerjaanProjectDescription = &d
	}
	if err := db.Create(&p).Error; err != nil {
		return uuid.Nil, helper.TranslateDBError(err)
	}
	log.Printf("[INFO] pekerjaan %s dibuat dari SPK %s", p.PekerjaanID, in.SourceDocumentID)
	return p.PekerjaanID, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return Find(ctx, s.DB, id)
}

// Find dipakai juga oleh milestone & payment untuk memastikan pekerjaan ada
func Find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := db.WithContext(ctx).Where("pekerjaan_id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Pekerjaan with id %s not found", id)
		}
		return nil, helper.Internal("gagal mengambil pekerjaan", err)
	}
	return &p, nil
}

func (s *Service) List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.Project, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.Project{})
	if v := strings.TrimSpace(f.CreationStatus); v != "" {
		q = q.Where("pekerjaan_creation_status = ?", v)
	}
	if v := strings.TrimSpace(f.ProgressStatus); v != "" {
		q = q.Where("pekerjaan_progress_status = ?", v)
	}
	if v := strings.TrimSpace(f.Cadence); v != "" {
		q = q.Where("pekerjaan_billing_cadence = ?", v)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		q = q.Where("LOWER(pekerjaan_project_name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.Internal("gagal menghitung pekerjaan", err)
	}
	var rows []model.Project
	order := f.OrderBy
	if order == "" {
		order = "pekerjaan_created_at DESC"
	}
	if err := q.Order(order).Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return nil, 0, helper.Internal("gagal mengambil pekerjaan", err)
	}
	return rows, total, nil
}

// UpdateBaseInfo: nama tidak boleh kosong bila dikirim
func (s *Service) UpdateBaseInfo(ctx context.Context, id uuid.UUID, req dto.BaseInfoRequest) (*model.Project, error) {
	req.Normalize()
	if req.ProjectName != nil && *req.ProjectName == "" {
		return nil, helper.Validation("project_name", "Project name cannot be empty")
	}

	var out *model.Project
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := Find(ctx, tx, id)
		if err != nil {
			return err
		}
		up := map[string]any{}
		if req.ProjectName != nil {
			up["pekerjaan_project_name"] = *req.ProjectName
		}
		if req.ProjectDescription != nil {
			up["pekerjaan_project_description"] = *req.ProjectDescription
		}
		if len(up) > 0 {
			if err := tx.Model(p).Updates(up).Error; err != nil {
				return helper.TranslateDBError(err)
			}
		}
		if _, err := completion.Sync(ctx, tx, id); err != nil {
			return err
		}
		out, err = Find(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
