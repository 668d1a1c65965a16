// file: internals/features/pekerjaan/projects/service/team_structure.go
package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bantal_backend/internals/features/pekerjaan/completion"
	"bantal_backend/internals/features/pekerjaan/projects/dto"
	"bantal_backend/internals/features/pekerjaan/projects/model"
	helper "bantal_backend/internals/helpers"
)

// NormalizeTeam memvalidasi input tim dan mengembalikan bentuk kanonik:
// project_lead string, posisi lain []string tanpa anggota kosong.
func NormalizeTeam(in dto.TeamStructureRequest) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, v := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, helper.Validation("team_structure", "Position name cannot be empty")
		}
		if key == model.TeamLeadKey {
			lead, ok := v.(string)
			if !ok || strings.TrimSpace(lead) == "" {
				return nil, helper.Validation(model.TeamLeadKey, "Project lead cannot be empty")
			}
			out[key] = strings.TrimSpace(lead)
			continue
		}
		raw, ok := v.([]any)
		if !ok {
			return nil, helper.Validation(key, "Team members for position %q must be an array", key)
		}
		members := make([]string, 0, len(raw))
		for _, m := range raw {
			s, ok := m.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return nil, helper.Validation(key, "Team member for position %q cannot be empty", key)
			}
			members = append(members, strings.TrimSpace(s))
		}
		out[key] = members
	}
	return out, nil
}

func (s *Service) GetTeam(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	p, err := Find(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	return p.Team(), nil
}

// UpdateTeam menggabungkan posisi yang dikirim ke struktur yang sudah ada
func (s *Service) UpdateTeam(ctx context.Context, id uuid.UUID, req dto.TeamStructureRequest) (map[string]any, error) {
	incoming, err := NormalizeTeam(req)
	if err != nil {
		return nil, err
	}

	var merged map[string]any
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := Find(ctx, tx, id)
		if err != nil {
			return err
		}
		merged = p.Team()
		for k, v := range incoming {
			merged[k] = v
		}
		raw, err := json.Marshal(merged)
		if err != nil {
			return helper.Internal("gagal encode struktur tim", err)
		}
		if err := tx.Model(p).Update("pekerjaan_team_member_structure", datatypes.JSON(raw)).Error; err != nil {
			return helper.TranslateDBError(err)
		}
		_, err = completion.Sync(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
