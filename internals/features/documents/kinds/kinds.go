// file: internals/features/documents/kinds/kinds.go
//
// Kontrak bersama untuk handler per jenis dokumen: diskriminator Kind,
// union tertutup Variant, dan interface Handler yang dipanggil oleh
// factory dan orkestrator lifecycle.
package kinds

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	mdModel "bantal_backend/internals/features/documents/master_documents/model"
)

type Kind string

const (
	KindOfferingLetter    Kind = "offering_letter"
	KindWorkAgreement     Kind = "work_agreement"
	KindNonMonthlyBilling Kind = "non_monthly_billing"
)

// Row: baris tabel per jenis dokumen (satu versi)
type Row interface {
	Meta() VersionMeta
}

type FinalizeInput struct {
	Summary          string
	PhysicalDelivery bool
	Attachments      []string
	FinalizedBy      *uuid.UUID
}

type FinalizeResult struct {
	Message   string     `json:"message"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Cadence   string     `json:"billing_cadence,omitempty"`
}

type Handler interface {
	Kind() Kind
	// DisplayName dipakai di pesan finalisasi
	DisplayName() string
	Decode(raw []byte) (Variant, error)
	// Validate tidak boleh menulis apa pun
	Validate(v Variant) error
	Create(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, v Variant) (Row, error)
	Revise(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, v Variant) (Row, error)
	Latest(ctx context.Context, db *gorm.DB, masterID uuid.UUID) (Row, error)
	Finalize(ctx context.Context, tx *gorm.DB, master *mdModel.MasterDocument, in FinalizeInput) (*FinalizeResult, error)
}

/* =========================
   Project spawner (SPK)
   ========================= */

type BillingCadence string

const (
	CadenceMonthly    BillingCadence = "monthly"
	CadenceNonMonthly BillingCadence = "non_monthly"
)

func (c BillingCadence) Valid() bool {
	return c == CadenceMonthly || c == CadenceNonMonthly
}

type SpawnInput struct {
	SourceDocumentID uuid.UUID
	ProjectName      string
	Description      string
	Cadence          BillingCadence
	ProjectFee       decimal.Decimal
	IncludeVAT       bool
}

//go:generate mockgen -destination=mocks/mock_spawner.go -package=mocks bantal_backend/internals/features/documents/kinds ProjectSpawner

// ProjectSpawner dipanggil di dalam transaksi finalisasi SPK
type ProjectSpawner interface {
	SpawnFromWorkAgreement(ctx context.Context, tx *gorm.DB, in SpawnInput) (uuid.UUID, error)
}
