// file: internals/features/pekerjaan/completion/sync.go
package completion

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	msModel "bantal_backend/internals/features/pekerjaan/milestones/model"
	payModel "bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
	helper "bantal_backend/internals/helpers"
)

type Result struct {
	ProjectID      uuid.UUID                `json:"pekerjaan_id"`
	Sections       Sections                 `json:"sections"`
	CreationStatus projModel.CreationStatus `json:"creation_status"`
	ProgressStatus projModel.ProgressStatus `json:"progress_status"`
}

func load(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (*projModel.Project, []msModel.Milestone, []payModel.Installment, error) {
	var p projModel.Project
	if err := db.WithContext(ctx).First(&p, "pekerjaan_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, helper.NotFound("Pekerjaan with id %s not found", projectID)
		}
		return nil, nil, nil, helper.Internal("gagal memuat pekerjaan", err)
	}
	var ms []msModel.Milestone
	if err := db.WithContext(ctx).Scopes(msModel.ScopeProject(projectID), msModel.Ordered).Find(&ms).Error; err != nil {
		return nil, nil, nil, helper.Internal("gagal memuat milestone", err)
	}
	var ins []payModel.Installment
	if err := db.WithContext(ctx).Scopes(payModel.ScopeProject(projectID)).Order("installment_number ASC").Find(&ins).Error; err != nil {
		return nil, nil, nil, helper.Internal("gagal memuat termin", err)
	}
	return &p, ms, ins, nil
}

// Get menghitung ulang tanpa menulis apa pun
func Get(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (*Result, error) {
	p, ms, ins, err := load(ctx, db, projectID)
	if err != nil {
		return nil, err
	}
	s := Compute(p, ms, ins)
	return &Result{
		ProjectID:      p.PekerjaanID,
		Sections:       s,
		CreationStatus: NextCreationStatus(p.PekerjaanCreationStatus, s),
		ProgressStatus: ProgressStatus(ms),
	}, nil
}

// Sync menghitung ulang dan menyimpan persentase + status ke baris pekerjaan.
// Dipanggil di dalam transaksi yang sama dengan penulisan bagian terkait.
func Sync(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*Result, error) {
	p, ms, ins, err := load(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}
	s := Compute(p, ms, ins)
	res := &Result{
		ProjectID:      p.PekerjaanID,
		Sections:       s,
		CreationStatus: NextCreationStatus(p.PekerjaanCreationStatus, s),
		ProgressStatus: ProgressStatus(ms),
	}

	if err := tx.WithContext(ctx).Model(&projModel.Project{}).
		Where("pekerjaan_id = ?", projectID).
		Updates(map[string]any{
			"pekerjaan_base_info_completion":  s.BaseInfo,
			"pekerjaan_team_completion":       s.Team,
			"pekerjaan_milestone_completion":  s.Milestones,
			"pekerjaan_payment_completion":    s.Payment,
			"pekerjaan_completion_percentage": s.Overall,
			"pekerjaan_creation_status":       res.CreationStatus,
			"pekerjaan_progress_status":       res.ProgressStatus,
		}).Error; err != nil {
		return nil, helper.Internal("gagal menyimpan completion", err)
	}
	if res.CreationStatus != p.PekerjaanCreationStatus {
		log.Printf("[INFO] pekerjaan %s: creation_status %s -> %s", projectID, p.PekerjaanCreationStatus, res.CreationStatus)
	}
	return res, nil
}
