// file: internals/features/pekerjaan/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/completion"
	msModel "bantal_backend/internals/features/pekerjaan/milestones/model"
	"bantal_backend/internals/features/pekerjaan/payments/dto"
	"bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/helpers/dbtime"
)

var (
	hundred          = decimal.NewFromInt(100)
	percentTolerance = decimal.RequireFromString("0.01")
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

func installments(ctx context.Context, db *gorm.DB, projectID uuid.UUID) ([]model.Installment, error) {
	var rows []model.Installment
	if err := db.WithContext(ctx).Scopes(model.ScopeProject(projectID)).
		Order("installment_number ASC").Order("installment_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, helper.Internal("gagal mengambil termin", err)
	}
	return rows, nil
}

func (s *Service) Get(ctx context.Context, projectID uuid.UUID) (*dto.PaymentStructureResponse, error) {
	return s.build(ctx, s.DB, projectID)
}

func (s *Service) build(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (*dto.PaymentStructureResponse, error) {
	p, err := projectService.Find(ctx, db, projectID)
	if err != nil {
		return nil, err
	}
	items, err := installments(ctx, db, projectID)
	if err != nil {
		return nil, err
	}
	out := dto.BuildResponse(p, items, completion.Payment(p, items))
	return &out, nil
}

// Update menyimpan info dasar & termin dalam satu transaksi lalu sinkron completion
func (s *Service) Update(ctx context.Context, projectID uuid.UUID, req dto.PaymentStructureRequest) (*dto.PaymentStructureResponse, error) {
	req.Normalize()

	var out *dto.PaymentStructureResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := projectService.Find(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if req.BasicInfo != nil {
			if err := updateBasicInfo(tx, p, req.BasicInfo); err != nil {
				return err
			}
		}
		if req.Installments != nil {
			if err := updateInstallments(ctx, tx, projectID, req.Installments); err != nil {
				return err
			}
		}
		if _, err := completion.Sync(ctx, tx, projectID); err != nil {
			return err
		}
		out, err = s.build(ctx, tx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func updateBasicInfo(tx *gorm.DB, p *projModel.Project, b *dto.BasicInfoRequest) error {
	up := map[string]any{}
	if b.ProjectFee != nil {
		if b.ProjectFee.IsNegative() {
			return helper.Validation("project_fee", "Project fee cannot be negative")
		}
		up["pekerjaan_project_fee"] = *b.ProjectFee
	}
	if b.Currency != nil && *b.Currency != "" {
		up["pekerjaan_currency"] = *b.Currency
	}
	if b.BankName != nil {
		up["pekerjaan_bank_name"] = *b.BankName
	}
	if b.AccountNumber != nil {
		up["pekerjaan_account_number"] = *b.AccountNumber
	}
	if b.AccountName != nil {
		up["pekerjaan_account_name"] = *b.AccountName
	}
	if len(up) == 0 {
		return nil
	}
	if err := tx.Model(p).Updates(up).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	return nil
}

// CheckPercentages: total persentase harus 100 (toleransi 0.01)
func CheckPercentages(items []dto.InstallmentRequest) error {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Percentage)
	}
	if total.Sub(hundred).Abs().GreaterThan(percentTolerance) {
		return helper.Validation("installments", "Total installment percentages must equal 100%%")
	}
	return nil
}

func updateInstallments(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, items []dto.InstallmentRequest) error {
	if err := CheckPercentages(items); err != nil {
		return err
	}
	dues := make([]*time.Time, len(items))
	for i := range items {
		due, err := validateInstallment(ctx, tx, projectID, &items[i])
		if err != nil {
			return err
		}
		dues[i] = due
	}
	if err := pruneInstallments(ctx, tx, projectID, items); err != nil {
		return err
	}
	for i := range items {
		if err := saveInstallment(ctx, tx, projectID, &items[i], dues[i]); err != nil {
			return err
		}
	}
	return nil
}

// pruneInstallments: daftar termin di request menggantikan seluruh set milik project,
// termin yang tidak disebut id-nya dihapus agar total tetap 100%
func pruneInstallments(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, items []dto.InstallmentRequest) error {
	keep := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.ID != nil && *it.ID != uuid.Nil {
			keep = append(keep, *it.ID)
		}
	}
	q := tx.WithContext(ctx).Scopes(model.ScopeProject(projectID))
	if len(keep) > 0 {
		q = q.Where("installment_id NOT IN ?", keep)
	}
	if err := q.Delete(&model.Installment{}).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	return nil
}

// validateInstallment mengembalikan due date untuk pemicu bertipe date
func validateInstallment(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, it *dto.InstallmentRequest) (*time.Time, error) {
	if it.Amount.IsNegative() {
		return nil, helper.Validation("amount", "Installment amount cannot be negative")
	}
	if it.Percentage.IsNegative() || it.Percentage.GreaterThan(hundred) {
		return nil, helper.Validation("percentage", "Installment percentage must be between 0 and 100")
	}

	switch model.TriggerType(it.TriggerType) {
	case model.TriggerMilestone:
		if it.ProjectMilestoneID == nil || *it.ProjectMilestoneID == uuid.Nil {
			return nil, helper.Validation("project_milestone_id", "Milestone trigger requires project_milestone_id")
		}
		var n int64
		if err := tx.WithContext(ctx).Model(&msModel.Milestone{}).
			Scopes(msModel.ScopeProject(projectID)).
			Where("milestone_id = ?", *it.ProjectMilestoneID).
			Count(&n).Error; err != nil {
			return nil, helper.Internal("gagal cek milestone", err)
		}
		if n == 0 {
			return nil, helper.Validation("project_milestone_id", "Milestone with id %s not found for this project", *it.ProjectMilestoneID)
		}
	case model.TriggerDate:
		if it.TriggerValue != nil && *it.TriggerValue != "" {
			t, err := dbtime.ParseDate(*it.TriggerValue)
			if err != nil {
				return nil, helper.Validation("trigger_value", "Invalid due date format")
			}
			return &t, nil
		}
	case model.TriggerEvent:
		if it.TriggerValue == nil || *it.TriggerValue != model.EventDocumentSubmission {
			return nil, helper.Validation("trigger_value", `Only "%s" event is currently supported`, model.EventDocumentSubmission)
		}
	case model.TriggerManual:
	default:
		return nil, helper.Validation("trigger_type", "Trigger type tidak dikenal: %s", it.TriggerType)
	}
	return nil, nil
}

func saveInstallment(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, it *dto.InstallmentRequest, due *time.Time) error {
	db := tx.WithContext(ctx)
	var row model.Installment
	if it.ID != nil && *it.ID != uuid.Nil {
		err := db.Scopes(model.ScopeProject(projectID)).Where("installment_id = ?", *it.ID).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound("Payment installment with id %s not found for this project", *it.ID)
		}
		if err != nil {
			return helper.Internal("gagal mengambil termin", err)
		}
	} else {
		row.InstallmentPekerjaanID = projectID
	}

	row.InstallmentNumber = it.InstallmentNumber
	row.InstallmentAmount = it.Amount
	row.InstallmentPercentage = it.Percentage
	row.InstallmentTriggerType = model.TriggerType(it.TriggerType)
	row.InstallmentTriggerValue = nonEmpty(it.TriggerValue)
	row.InstallmentMilestoneID = nil
	if row.InstallmentTriggerType == model.TriggerMilestone {
		row.InstallmentMilestoneID = it.ProjectMilestoneID
	}
	row.InstallmentDescription = it.Description
	row.InstallmentStatus = model.StatusPending
	if st := model.Status(it.Status); st.Valid() {
		row.InstallmentStatus = st
	}
	row.InstallmentNotes = nonEmpty(it.Notes)
	row.InstallmentDueDate = due

	if err := db.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err)
	}
	return nil
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func (s *Service) DeleteInstallment(ctx context.Context, projectID, installmentID uuid.UUID) (*dto.PaymentStructureResponse, error) {
	var out *dto.PaymentStructureResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := projectService.Find(ctx, tx, projectID); err != nil {
			return err
		}
		res := tx.Scopes(model.ScopeProject(projectID)).Where("installment_id = ?", installmentID).Delete(&model.Installment{})
		if res.Error != nil {
			return helper.TranslateDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.NotFound("Payment installment with id %s not found for this project", installmentID)
		}
		if _, err := completion.Sync(ctx, tx, projectID); err != nil {
			return err
		}
		var err error
		out, err = s.build(ctx, tx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
