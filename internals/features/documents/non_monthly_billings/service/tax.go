// file: internals/features/documents/non_monthly_billings/service/tax.go
package service

import "github.com/shopspring/decimal"

var (
	dppNumerator   = decimal.NewFromInt(11)
	dppDenominator = decimal.NewFromInt(12)
	vatRate        = decimal.RequireFromString("0.12")
	pph23Rate      = decimal.RequireFromString("0.02")
)

type Taxes struct {
	DPPOtherValue decimal.Decimal
	VAT12         decimal.Decimal
	IncomeTax23   decimal.Decimal
	TotalBilling  decimal.Decimal
}

// ComputeTaxes: DPP nilai lain 11/12, PPN 12% dari DPP, PPh 23 2% dari nilai kontrak.
// Semua dibulatkan 2 desimal.
func ComputeTaxes(contract decimal.Decimal) Taxes {
	dpp := contract.Mul(dppNumerator).Div(dppDenominator).Round(2)
	vat := dpp.Mul(vatRate).Round(2)
	pph := contract.Mul(pph23Rate).Round(2)
	return Taxes{
		DPPOtherValue: dpp,
		VAT12:         vat,
		IncomeTax23:   pph,
		TotalBilling:  contract.Add(vat).Sub(pph).Round(2),
	}
}
