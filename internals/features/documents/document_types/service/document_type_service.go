// file: internals/features/documents/document_types/service/document_type_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/document_types/model"
	helper "bantal_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// FindByIdentifier: cocokkan nama ATAU shorthand (case-insensitive)
func (s *Service) FindByIdentifier(ctx context.Context, identifier string) (*model.DocumentType, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return nil, helper.Validation("documentType", "jenis dokumen wajib diisi")
	}
	var m model.DocumentType
	err := s.DB.WithContext(ctx).
		Where("LOWER(document_type_name) = LOWER(?) OR LOWER(document_type_shorthand) = LOWER(?)", id, id).
		Order("document_type_id ASC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(`Document type "%s" not found`, id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) FindByShorthand(ctx context.Context, shorthand string) (*model.DocumentType, error) {
	sh := strings.TrimSpace(shorthand)
	var m model.DocumentType
	err := s.DB.WithContext(ctx).
		Where("LOWER(document_type_shorthand) = LOWER(?)", sh).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(`Document type with shortHand "%s" not found`, sh)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) List(ctx context.Context) ([]model.DocumentType, error) {
	var rows []model.DocumentType
	if err := s.DB.WithContext(ctx).Order("document_type_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type CreateInput struct {
	Name      string
	Shorthand string
	Handler   *model.HandlerKey
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*model.DocumentType, error) {
	name := strings.TrimSpace(in.Name)
	short := strings.TrimSpace(in.Shorthand)
	if name == "" {
		return nil, helper.Validation("document_type_name", "nama jenis dokumen wajib diisi")
	}
	if short == "" {
		return nil, helper.Validation("document_type_shorthand", "shorthand wajib diisi")
	}
	if in.Handler != nil && !in.Handler.Valid() {
		return nil, helper.Validation("document_type_handler", "handler %q tidak dikenal", *in.Handler)
	}

	var n int64
	if err := s.DB.WithContext(ctx).Model(&model.DocumentType{}).
		Where("LOWER(document_type_name) = LOWER(?) OR LOWER(document_type_shorthand) = LOWER(?)", name, short).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, helper.Conflict("jenis dokumen %q / %q sudah ada", name, short)
	}

	m := model.DocumentType{
		DocumentTypeName:      name,
		DocumentTypeShorthand: short,
		DocumentTypeHandler:   in.Handler,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return &m, nil
}
