// file: internals/features/documents/kinds/variants.go
package kinds

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Variant: OfferingLetter | WorkAgreement | NonMonthlyBilling
type Variant interface {
	Kind() Kind
	sealed()
}

type OfferingLetter struct {
	ClientID            *uuid.UUID `json:"client_id"`
	DocumentDescription string     `json:"document_description"`
	OfferedService      string     `json:"offered_service"`
	PersonInChargeID    *uuid.UUID `json:"person_in_charge_id"`
}

func (OfferingLetter) Kind() Kind { return KindOfferingLetter }
func (OfferingLetter) sealed()    {}

type WorkAgreement struct {
	ClientID            *uuid.UUID       `json:"client_id"`
	DocumentDescription string           `json:"document_description"`
	StartDate           string           `json:"start_date"`
	EndDate             *string          `json:"end_date"`
	ProjectFee          *decimal.Decimal `json:"project_fee"`
	PaymentInstallment  int              `json:"payment_installment"`
	IsIncludeVAT        bool             `json:"is_include_vat"`
	BillingCadence      *string          `json:"billing_cadence"`
}

func (WorkAgreement) Kind() Kind { return KindWorkAgreement }
func (WorkAgreement) sealed()    {}

type NonMonthlyBilling struct {
	ClientID            *uuid.UUID       `json:"client_id"`
	DocumentDescription string           `json:"document_description"`
	ContractValue       *decimal.Decimal `json:"contract_value"`
	DPPOtherValue       *decimal.Decimal `json:"dpp_other_value"`
	VAT12               *decimal.Decimal `json:"vat_12"`
	IncomeTax23         *decimal.Decimal `json:"income_tax_23"`
	TotalBilling        *decimal.Decimal `json:"total_billing"`
	BankInfo            datatypes.JSON   `json:"bank_info"`
	WorkAgreementID     *uuid.UUID       `json:"work_agreement_id"`
}

func (NonMonthlyBilling) Kind() Kind { return KindNonMonthlyBilling }
func (NonMonthlyBilling) sealed()    {}
