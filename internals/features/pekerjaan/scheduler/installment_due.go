// file: internals/features/pekerjaan/scheduler/installment_due.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"bantal_backend/internals/configs"
	"bantal_backend/internals/features/pekerjaan/payments/model"
	"bantal_backend/internals/helpers/dbtime"
	"bantal_backend/internals/metrics"
)

const DefaultDueSchedule = "0 1 * * *"

// MarkDueInstallments: termin pending yang due date-nya sudah lewat -> due.
// now dipotong ke tanggal (UTC) karena due date disimpan sebagai tanggal.
func MarkDueInstallments(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	today := dbtime.DateOnly(now.In(dbtime.JakartaLocation()))
	res := db.WithContext(ctx).Model(&model.Installment{}).
		Where("installment_status = ?", model.StatusPending).
		Where("installment_due_date IS NOT NULL AND installment_due_date < ?", today).
		Update("installment_status", model.StatusDue)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		metrics.InstallmentsMarkedDue.Add(float64(res.RowsAffected))
	}
	return res.RowsAffected, nil
}

// StartInstallmentDueCron dipanggil dari main.go; caller wajib Stop() saat shutdown
func StartInstallmentDueCron(db *gorm.DB) (*cron.Cron, error) {
	schedule := configs.GetEnv("INSTALLMENT_DUE_CRON", DefaultDueSchedule)

	c := cron.New(
		cron.WithLocation(dbtime.JakartaLocation()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		n, err := MarkDueInstallments(ctx, db, time.Now())
		if err != nil {
			log.Printf("[CRON] installment due error: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[CRON] %d termin dipindah ke status due", n)
		} else {
			log.Printf("[CRON] tidak ada termin yang jatuh tempo")
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[CRON] installment due started schedule=%q", schedule)
	c.Start()
	return c, nil
}
