// file: internals/features/documents/lifecycle/service/lifecycle_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/blobs"
	"bantal_backend/internals/constants"
	"bantal_backend/internals/features/documents/factory"
	"bantal_backend/internals/features/documents/kinds"
	"bantal_backend/internals/features/documents/lifecycle/dto"
	mdDTO "bantal_backend/internals/features/documents/master_documents/dto"
	mdModel "bantal_backend/internals/features/documents/master_documents/model"
	mdService "bantal_backend/internals/features/documents/master_documents/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/metrics"
)

const MaxFinalizeFiles = 2

type Service struct {
	DB       *gorm.DB
	Registry *factory.Registry
	Masters  *mdService.Service
	Blobs    blobs.Store
}

func New(db *gorm.DB, registry *factory.Registry, store blobs.Store) *Service {
	return &Service{
		DB:       db,
		Registry: registry,
		Masters:  mdService.New(db),
		Blobs:    store,
	}
}

/* =========================
   Create
   ========================= */

type CreateResult struct {
	Master *mdModel.MasterDocument
	Kind   kinds.Kind
	Row    kinds.Row
}

// Create: resolve → decode → validate (tanpa tulis) → blob → satu transaksi
func (s *Service) Create(ctx context.Context, in dto.CreateInput) (*CreateResult, error) {
	entry, err := s.Registry.Resolve(in.Identifier)
	if err != nil {
		return nil, err
	}
	h := entry.Handler

	variant, err := h.Decode(in.Payload)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(variant); err != nil {
		return nil, err
	}
	var masterReq mdDTO.MasterFieldsRequest
	if err := kinds.DecodeJSON(in.Payload, &masterReq); err != nil {
		return nil, err
	}
	fields, err := masterReq.ToFields(in.CreatedBy)
	if err != nil {
		return nil, err
	}

	// blob ditulis sebelum transaksi; bila transaksi gagal blob tertinggal
	var pointer *string
	if in.File != nil {
		p, err := s.storeBlob(ctx, *in.File)
		if err != nil {
			return nil, err
		}
		pointer = &p
	}

	var out CreateResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		master, err := s.Masters.Create(ctx, tx, &entry.Type, fields, pointer)
		if err != nil {
			return err
		}
		row, err := h.Create(ctx, tx, master, variant)
		if err != nil {
			return err
		}
		out = CreateResult{Master: master, Kind: h.Kind(), Row: row}
		return nil
	})
	if err != nil {
		if pointer != nil {
			log.Printf("[DOCUMENT] create gagal, blob %s tidak terpakai: %v", *pointer, err)
		}
		return nil, err
	}

	metrics.DocumentsCreated.WithLabelValues(string(h.Kind())).Inc()
	log.Printf("[DOCUMENT] %s %s dibuat (no=%s, index=%d)", entry.Type.DocumentTypeShorthand,
		out.Master.MasterDocumentID, out.Master.MasterDocumentNumber, out.Master.MasterDocumentIndexNumber)
	return &out, nil
}

/* =========================
   Finalize
   ========================= */

func (s *Service) Finalize(ctx context.Context, in dto.FinalizeInput) (*dto.FinalizeResponse, error) {
	entry, err := s.Registry.Resolve(in.Identifier)
	if err != nil {
		return nil, err
	}
	if in.DocumentID == uuid.Nil {
		return nil, helper.Validation("id", "Document ID is required")
	}
	if len(in.Files) > MaxFinalizeFiles {
		return nil, helper.Validation("files", "maksimal %d file lampiran", MaxFinalizeFiles)
	}

	attachments := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		p, err := s.storeBlob(ctx, f)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, p)
	}

	var result *kinds.FinalizeResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		master, err := s.Masters.FindForUpdate(ctx, tx, in.DocumentID)
		if err != nil {
			return err
		}
		if master.MasterDocumentTypeID != entry.Type.DocumentTypeID {
			return helper.Validation("documentType", `Document "%s" is not a %s document`, in.DocumentID, entry.Type.DocumentTypeName)
		}
		switch {
		case master.MasterDocumentStatus == constants.DocumentStatusFinalized:
			return helper.Conflict(`Document "%s" is already finalized`, in.DocumentID)
		case master.MasterDocumentStatus.IsTerminal():
			return helper.Conflict(`Document "%s" is %s and cannot be finalized`, in.DocumentID, master.MasterDocumentStatus)
		}

		result, err = entry.Handler.Finalize(ctx, tx, master, kinds.FinalizeInput{
			Summary:          in.Summary,
			PhysicalDelivery: in.PhysicalDelivery,
			Attachments:      attachments,
			FinalizedBy:      in.FinalizedBy,
		})
		return err
	})
	if err != nil {
		if len(attachments) > 0 {
			log.Printf("[FINALIZE] gagal, lampiran %v tidak terpakai: %v", attachments, err)
		}
		return nil, err
	}

	metrics.DocumentsFinalized.WithLabelValues(string(entry.Handler.Kind())).Inc()
	return &dto.FinalizeResponse{
		Message:     result.Message,
		DocumentID:  in.DocumentID,
		ProjectID:   result.ProjectID,
		Cadence:     result.Cadence,
		Attachments: attachments,
	}, nil
}

/* =========================
   Detail & revisions
   ========================= */

func (s *Service) Detail(ctx context.Context, id uuid.UUID) (*dto.DocumentDetail, error) {
	master, err := s.Masters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry, err := s.Registry.ResolveByTypeID(master.MasterDocumentTypeID)
	if err != nil {
		return nil, err
	}
	row, err := entry.Handler.Latest(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentDetail{
		Document: mdDTO.FromModel(master),
		Kind:     entry.Handler.Kind(),
		Details:  row,
	}, nil
}

// Revise menambah versi baru baris per jenis; hanya untuk DRAFT.
func (s *Service) Revise(ctx context.Context, in dto.ReviseInput) (*dto.DocumentDetail, error) {
	master, err := s.Masters.FindByID(ctx, in.DocumentID)
	if err != nil {
		return nil, err
	}
	if master.MasterDocumentStatus != constants.DocumentStatusDraft {
		return nil, helper.Conflict(`Document "%s" is %s, only DRAFT documents can be revised`, in.DocumentID, master.MasterDocumentStatus)
	}
	entry, err := s.Registry.ResolveByTypeID(master.MasterDocumentTypeID)
	if err != nil {
		return nil, err
	}
	variant, err := entry.Handler.Decode(in.Payload)
	if err != nil {
		return nil, err
	}
	if err := entry.Handler.Validate(variant); err != nil {
		return nil, err
	}

	var newPointer *string
	if in.File != nil {
		if master.MasterDocumentBlobPointer != nil {
			if _, err := s.appendBlob(ctx, *master.MasterDocumentBlobPointer, *in.File); err != nil {
				return nil, err
			}
		} else {
			p, err := s.storeBlob(ctx, *in.File)
			if err != nil {
				return nil, err
			}
			newPointer = &p
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.Masters.FindForUpdate(ctx, tx, in.DocumentID)
		if err != nil {
			return err
		}
		if locked.MasterDocumentStatus != constants.DocumentStatusDraft {
			return helper.Conflict(`Document "%s" is %s, only DRAFT documents can be revised`, in.DocumentID, locked.MasterDocumentStatus)
		}
		if newPointer != nil {
			if err := s.Masters.SetBlobPointer(ctx, tx, in.DocumentID, *newPointer); err != nil {
				return err
			}
		}
		_, err = entry.Handler.Revise(ctx, tx, locked, variant)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Detail(ctx, in.DocumentID)
}

/* =========================
   Files
   ========================= */

func (s *Service) LatestFile(ctx context.Context, id uuid.UUID) (*blobs.Version, error) {
	pointer, err := s.pointerOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Blobs.GetLatestVersion(ctx, pointer)
}

func (s *Service) FileVersions(ctx context.Context, id uuid.UUID) ([]blobs.VersionInfo, error) {
	pointer, err := s.pointerOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Blobs.ListVersions(ctx, pointer)
}

func (s *Service) pointerOf(ctx context.Context, id uuid.UUID) (string, error) {
	if s.Blobs == nil {
		return "", helper.Integration(503, "blob store tidak tersedia", nil)
	}
	master, err := s.Masters.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if master.MasterDocumentBlobPointer == nil || *master.MasterDocumentBlobPointer == "" {
		return "", helper.NotFound(`Document "%s" has no file`, id)
	}
	return *master.MasterDocumentBlobPointer, nil
}

func (s *Service) storeBlob(ctx context.Context, f dto.FileInput) (string, error) {
	if s.Blobs == nil {
		return "", helper.Integration(503, "blob store tidak tersedia", nil)
	}
	p, err := s.Blobs.Store(ctx, f.Content, f.MimeType)
	if err != nil {
		return "", wrapBlobError(err)
	}
	return p, nil
}

func (s *Service) appendBlob(ctx context.Context, pointer string, f dto.FileInput) (int, error) {
	if s.Blobs == nil {
		return 0, helper.Integration(503, "blob store tidak tersedia", nil)
	}
	n, err := s.Blobs.AppendVersion(ctx, pointer, f.Content, f.MimeType)
	if err != nil {
		return 0, wrapBlobError(err)
	}
	return n, nil
}

// error domain (Validation/NotFound) diteruskan apa adanya
func wrapBlobError(err error) error {
	if helper.IsAppError(err) {
		return err
	}
	return helper.Integration(0, "gagal menyimpan file ke blob store", err)
}
