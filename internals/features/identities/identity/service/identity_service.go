// file: internals/features/identities/identity/service/identity_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bantal_backend/internals/features/identities/identity/dto"
	"bantal_backend/internals/features/identities/identity/model"
	helper "bantal_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

func (s *Service) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, helper.Validation("email", "email wajib diisi")
	}
	var m model.Identity
	err := s.DB.WithContext(ctx).
		Where("LOWER(identity_email) = LOWER(?)", email).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("identity dengan email %q tidak ditemukan", email)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	var m model.Identity
	err := s.DB.WithContext(ctx).Where("identity_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Identity with ID %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type ListFilter struct {
	Search   string
	Role     string
	IsActive *bool
	Paging   helper.Paging
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]model.Identity, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.Identity{})
	if v := strings.TrimSpace(f.Search); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(identity_name) LIKE ? OR LOWER(identity_email) LIKE ?", like, like)
	}
	if v := strings.TrimSpace(f.Role); v != "" {
		q = q.Where("identity_role = ?", strings.ToLower(v))
	}
	if f.IsActive != nil {
		q = q.Where("identity_is_active = ?", *f.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Identity
	if f.Paging.Limit > 0 {
		q = q.Offset(f.Paging.Offset).Limit(f.Paging.Limit)
	}
	if err := q.Order("identity_name ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateIdentityRequest) (*model.Identity, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(m)
	if strings.TrimSpace(m.IdentityName) == "" {
		return nil, helper.Validation("identity_name", "nama tidak boleh kosong")
	}
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	return m, nil
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Identity, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status := model.IdentityStatusInactive
	if active {
		status = model.IdentityStatusActive
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"identity_is_active": active,
		"identity_status":    status,
	}).Error; err != nil {
		return nil, err
	}
	m.IdentityIsActive = active
	m.IdentityStatus = status
	return m, nil
}

// ValidateAndSync dipanggil di setiap request terautentikasi.
// Identity harus sudah terdaftar (by email) dan aktif; subject SSO
// di-sync bila kosong atau berbeda.
func (s *Service) ValidateAndSync(ctx context.Context, claims dto.SSOClaims) (*model.Identity, error) {
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, helper.Forbidden("token tidak membawa email")
	}

	m, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return nil, helper.Forbidden("User %s is not authorized to access this system", email)
		}
		return nil, err
	}
	if !m.IdentityIsActive || m.IdentityStatus != model.IdentityStatusActive {
		return nil, helper.Forbidden("User account for %s is not active", email)
	}

	updates := map[string]any{"identity_updated_at": time.Now().UTC()}
	sub := strings.TrimSpace(claims.Subject)
	if sub != "" {
		switch {
		case m.IdentityKeycloakID == nil || *m.IdentityKeycloakID == "":
			log.Printf("[AUTH] set keycloak id untuk %s: %s", email, sub)
			updates["identity_keycloak_id"] = sub
		case *m.IdentityKeycloakID != sub:
			log.Printf("[AUTH] keycloak id mismatch untuk %s. lama=%s baru=%s", email, *m.IdentityKeycloakID, sub)
			updates["identity_keycloak_id"] = sub
		}
	}
	if m.IdentityPreferredUsername == nil && strings.TrimSpace(claims.PreferredUsername) != "" {
		updates["identity_preferred_username"] = strings.TrimSpace(claims.PreferredUsername)
	}

	if err := s.DB.WithContext(ctx).Model(&model.Identity{}).
		Where("identity_id = ?", m.IdentityID).
		Updates(updates).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}
	if v, ok := updates["identity_keycloak_id"].(string); ok {
		m.IdentityKeycloakID = &v
	}
	if v, ok := updates["identity_preferred_username"].(string); ok {
		m.IdentityPreferredUsername = &v
	}
	m.IdentityUpdatedAt = updates["identity_updated_at"].(time.Time)
	return m, nil
}
