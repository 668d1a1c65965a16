// file: internals/features/documents/factory/registry.go
//
// Registry memetakan nama/shorthand jenis dokumen ke handler. Dibangun
// eksplisit dari tabel document_type sebelum server menerima request.
package factory

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"gorm.io/gorm"

	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	"bantal_backend/internals/features/documents/kinds"
	nmbService "bantal_backend/internals/features/documents/non_monthly_billings/service"
	olService "bantal_backend/internals/features/documents/offering_letters/service"
	waService "bantal_backend/internals/features/documents/work_agreements/service"
	helper "bantal_backend/internals/helpers"
)

type Entry struct {
	Type    docTypeModel.DocumentType
	Handler kinds.Handler
}

type Registry struct {
	mu        sync.RWMutex
	built     bool
	entries   map[string]Entry
	unhandled map[string]docTypeModel.DocumentType

	offering   kinds.Handler
	agreement  kinds.Handler
	nonMonthly kinds.Handler
}

func NewRegistry(spawner kinds.ProjectSpawner) *Registry {
	return &Registry{
		entries:    map[string]Entry{},
		unhandled:  map[string]docTypeModel.DocumentType{},
		offering:   olService.New(),
		agreement:  waService.New(spawner),
		nonMonthly: nmbService.New(),
	}
}

// HandlerFor: switch statis di diskriminator
func (r *Registry) HandlerFor(key docTypeModel.HandlerKey) (kinds.Handler, bool) {
	switch key {
	case docTypeModel.HandlerOfferingLetter:
		return r.offering, true
	case docTypeModel.HandlerWorkAgreement:
		return r.agreement, true
	case docTypeModel.HandlerNonMonthlyBilling:
		return r.nonMonthly, true
	}
	return nil, false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Build memuat ulang seluruh tabel dispatch dari database.
func (r *Registry) Build(ctx context.Context, db *gorm.DB) error {
	var types []docTypeModel.DocumentType
	if err := db.WithContext(ctx).Order("document_type_id ASC").Find(&types).Error; err != nil {
		return fmt.Errorf("load document types: %w", err)
	}

	entries := make(map[string]Entry, len(types)*2)
	unhandled := map[string]docTypeModel.DocumentType{}
	for _, t := range types {
		key, ok := t.ResolvedHandler()
		var h kinds.Handler
		if ok {
			h, ok = r.HandlerFor(key)
		}
		names := []string{normalizeKey(t.DocumentTypeName), normalizeKey(t.DocumentTypeShorthand)}
		if !ok {
			log.Printf("[DOCUMENT] jenis dokumen %q (%s) belum punya handler", t.DocumentTypeName, t.DocumentTypeShorthand)
			for _, n := range names {
				unhandled[n] = t
			}
			continue
		}
		for _, n := range names {
			if prev, dup := entries[n]; dup && prev.Type.DocumentTypeID != t.DocumentTypeID {
				log.Printf("[DOCUMENT] identifier %q bentrok antara type %d dan %d, dipakai %d",
					n, prev.Type.DocumentTypeID, t.DocumentTypeID, prev.Type.DocumentTypeID)
				continue
			}
			entries[n] = Entry{Type: t, Handler: h}
		}
	}

	r.mu.Lock()
	r.entries = entries
	r.unhandled = unhandled
	r.built = true
	r.mu.Unlock()

	log.Printf("[DOCUMENT] registry siap: %d jenis dokumen, %d identifier", len(types), len(entries))
	return nil
}

func (r *Registry) Reload(ctx context.Context, db *gorm.DB) error {
	return r.Build(ctx, db)
}

// Resolve menerima nama lengkap ATAU shorthand (case-insensitive).
func (r *Registry) Resolve(identifier string) (Entry, error) {
	key := normalizeKey(identifier)
	if key == "" {
		return Entry{}, helper.Validation("documentType", "jenis dokumen wajib diisi")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.built {
		return Entry{}, helper.Internal("registry jenis dokumen belum diinisialisasi", nil)
	}
	if e, ok := r.entries[key]; ok {
		return e, nil
	}
	if t, ok := r.unhandled[key]; ok {
		return Entry{}, helper.NotFound(`No handler registered for document type "%s"`, t.DocumentTypeName)
	}
	return Entry{}, helper.NotFound(`Document type "%s" not found`, strings.TrimSpace(identifier))
}

// ResolveByTypeID dipakai saat hanya punya master document
func (r *Registry) ResolveByTypeID(typeID uint) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Type.DocumentTypeID == typeID {
			return e, nil
		}
	}
	return Entry{}, helper.NotFound("no handler registered for document type id %d", typeID)
}
