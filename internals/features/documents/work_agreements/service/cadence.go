// file: internals/features/documents/work_agreements/service/cadence.go
package service

import (
	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/documents/work_agreements/model"
	"bantal_backend/internals/helpers/dbtime"
)

// ClassifyCadence menentukan pola penagihan proyek dari SPK.
// Nilai eksplisit menang; tanpa itu, satu termin per bulan kalender
// kontrak dianggap bulanan.
func ClassifyCadence(row *model.WorkAgreement) kinds.BillingCadence {
	if row.SPKBillingCadence != nil {
		if c := kinds.BillingCadence(*row.SPKBillingCadence); c.Valid() {
			return c
		}
	}
	if row.SPKEndDate == nil || row.SPKPaymentInstallment <= 1 {
		return kinds.CadenceNonMonthly
	}
	if row.SPKPaymentInstallment == dbtime.MonthsBetween(row.SPKStartDate, *row.SPKEndDate) {
		return kinds.CadenceMonthly
	}
	return kinds.CadenceNonMonthly
}
