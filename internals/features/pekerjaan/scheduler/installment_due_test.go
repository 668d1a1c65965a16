package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bantal_backend/internals/features/pekerjaan/payments/model"
	"bantal_backend/internals/helpers/dbtime"
	"bantal_backend/internals/testutil"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMarkDueInstallments(t *testing.T) {
	db := testutil.NewDB(t)
	project := uuid.New()

	rows := []model.Installment{
		{InstallmentNumber: 1, InstallmentDescription: "lewat", InstallmentDueDate: day(2025, time.June, 14)},
		{InstallmentNumber: 2, InstallmentDescription: "hari ini", InstallmentDueDate: day(2025, time.June, 15)},
		{InstallmentNumber: 3, InstallmentDescription: "tanpa tanggal"},
		{InstallmentNumber: 4, InstallmentDescription: "sudah dibayar", InstallmentDueDate: day(2025, time.May, 1), InstallmentStatus: model.StatusPaid},
	}
	for i := range rows {
		rows[i].InstallmentPekerjaanID = project
		rows[i].InstallmentAmount = decimal.NewFromInt(1_000_000)
		rows[i].InstallmentPercentage = decimal.NewFromInt(25)
		rows[i].InstallmentTriggerType = model.TriggerDate
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	// 10:00 WIB, 15 Juni
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, dbtime.JakartaLocation())

	n, err := MarkDueInstallments(context.Background(), db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var got []model.Installment
	require.NoError(t, db.Order("installment_number ASC").Find(&got).Error)
	require.Len(t, got, 4)
	assert.Equal(t, model.StatusDue, got[0].InstallmentStatus)
	assert.Equal(t, model.StatusPending, got[1].InstallmentStatus)
	assert.Equal(t, model.StatusPending, got[2].InstallmentStatus)
	assert.Equal(t, model.StatusPaid, got[3].InstallmentStatus)

	n, err = MarkDueInstallments(context.Background(), db, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStartInstallmentDueCron(t *testing.T) {
	db := testutil.NewDB(t)

	t.Setenv("INSTALLMENT_DUE_CRON", "bukan jadwal")
	_, err := StartInstallmentDueCron(db)
	assert.Error(t, err)

	t.Setenv("INSTALLMENT_DUE_CRON", "*/5 * * * *")
	c, err := StartInstallmentDueCron(db)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
