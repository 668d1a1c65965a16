// file: internals/features/pekerjaan/milestones/service/milestone_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/completion"
	"bantal_backend/internals/features/pekerjaan/milestones/dto"
	"bantal_backend/internals/features/pekerjaan/milestones/model"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

func notFound(id uuid.UUID) error {
	return helper.NotFound("Milestone with id %s not found for this project", id)
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]model.Milestone, error) {
	if _, err := projectService.Find(ctx, s.DB, projectID); err != nil {
		return nil, err
	}
	var rows []model.Milestone
	if err := s.DB.WithContext(ctx).Scopes(model.ScopeProject(projectID), model.Ordered).Find(&rows).Error; err != nil {
		return nil, helper.Internal("gagal mengambil milestone", err)
	}
	return rows, nil
}

func find(ctx context.Context, db *gorm.DB, projectID, id uuid.UUID) (*model.Milestone, error) {
	var m model.Milestone
	err := db.WithContext(ctx).Scopes(model.ScopeProject(projectID)).Where("milestone_id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, helper.Internal("gagal mengambil milestone", err)
	}
	return &m, nil
}

func (s *Service) Get(ctx context.Context, projectID, id uuid.UUID) (*model.Milestone, error) {
	return find(ctx, s.DB, projectID, id)
}

// Create: tanpa order_index, milestone ditaruh paling akhir
func (s *Service) Create(ctx context.Context, projectID uuid.UUID, req dto.CreateMilestoneRequest) (*model.Milestone, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	m.MilestonePekerjaanID = projectID

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := projectService.Find(ctx, tx, projectID); err != nil {
			return err
		}
		if req.OrderIndex == nil {
			var maxIdx *int
			if err := tx.Model(&model.Milestone{}).Scopes(model.ScopeProject(projectID)).
				Select("MAX(milestone_order_index)").Scan(&maxIdx).Error; err != nil {
				return helper.Internal("gagal membaca urutan milestone", err)
			}
			if maxIdx != nil {
				m.MilestoneOrderIndex = *maxIdx + 1
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			return helper.TranslateDBError(err)
		}
		_, err := completion.Sync(ctx, tx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(ctx context.Context, projectID, id uuid.UUID, req dto.UpdateMilestoneRequest) (*model.Milestone, error) {
	up, err := req.ToUpdates()
	if err != nil {
		return nil, err
	}
	var out *model.Milestone
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := find(ctx, tx, projectID, id)
		if err != nil {
			return err
		}
		if len(up) > 0 {
			if err := tx.Model(m).Updates(up).Error; err != nil {
				return helper.TranslateDBError(err)
			}
		}
		if _, err := completion.Sync(ctx, tx, projectID); err != nil {
			return err
		}
		out, err = find(ctx, tx, projectID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Scopes(model.ScopeProject(projectID)).Where("milestone_id = ?", id).Delete(&model.Milestone{})
		if res.Error != nil {
			return helper.TranslateDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound(id)
		}
		// termin yang menunjuk milestone ini kehilangan pemicunya
		if err := tx.Table("payment_installment").
			Where("installment_pekerjaan_id = ? AND installment_milestone_id = ?", projectID, id).
			Update("installment_milestone_id", nil).Error; err != nil {
			return helper.Internal("gagal melepas termin dari milestone", err)
		}
		_, err := completion.Sync(ctx, tx, projectID)
		return err
	})
}
