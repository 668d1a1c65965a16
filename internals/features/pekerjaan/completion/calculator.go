// file: internals/features/pekerjaan/completion/calculator.go
package completion

import (
	"math"
	"strings"

	msModel "bantal_backend/internals/features/pekerjaan/milestones/model"
	payModel "bantal_backend/internals/features/pekerjaan/payments/model"
	projModel "bantal_backend/internals/features/pekerjaan/projects/model"
)

// Sections: persentase per bagian + agregat
type Sections struct {
	BaseInfo   int `json:"base_info"`
	Team       int `json:"team_structure"`
	Milestones int `json:"milestones"`
	Payment    int `json:"payment_structure"`
	Overall    int `json:"overall"`
}

func (s Sections) AllComplete() bool {
	return s.BaseInfo == 100 && s.Team == 100 && s.Milestones == 100 && s.Payment == 100
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func blankPtr(s *string) bool { return s == nil || blank(*s) }

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// BaseInfo: nama dan deskripsi terisi
func BaseInfo(name, description string) int {
	done := 0
	if !blank(name) {
		done++
	}
	if !blank(description) {
		done++
	}
	return percent(done, 2)
}

// Team: ada project lead, dan minimal satu posisi berisi anggota
func Team(team map[string]any) int {
	done := 0
	if lead, ok := team[projModel.TeamLeadKey].(string); ok && !blank(lead) {
		done++
	}
	for key, v := range team {
		if key == projModel.TeamLeadKey {
			continue
		}
		if hasMember(v) {
			done++
			break
		}
	}
	return percent(done, 2)
}

func hasMember(v any) bool {
	switch members := v.(type) {
	case []any:
		for _, m := range members {
			if s, ok := m.(string); ok && !blank(s) {
				return true
			}
		}
	case []string:
		for _, s := range members {
			if !blank(s) {
				return true
			}
		}
	}
	return false
}

// Milestones: empat cek @25; tanpa milestone = 0
func Milestones(items []msModel.Milestone) int {
	if len(items) == 0 {
		return 0
	}
	names, descs, dues := true, true, true
	for _, m := range items {
		if blank(m.MilestoneName) {
			names = false
		}
		if blank(m.MilestoneDescription) {
			descs = false
		}
		if m.MilestoneDueDate == nil {
			dues = false
		}
	}
	score := 25
	for _, ok := range []bool{names, descs, dues} {
		if ok {
			score += 25
		}
	}
	return score
}

// Payment: fee+currency, ada termin, termin lengkap, rekening bank
func Payment(p *projModel.Project, items []payModel.Installment) int {
	score := 0
	if p.PekerjaanProjectFee != nil && p.PekerjaanProjectFee.IsPositive() && !blank(p.PekerjaanCurrency) {
		score += 25
	}
	if len(items) > 0 {
		score += 25
		complete := true
		for _, it := range items {
			if it.InstallmentTriggerType == "" || blank(it.InstallmentDescription) {
				complete = false
				break
			}
		}
		if complete {
			score += 25
		}
	}
	if !blankPtr(p.PekerjaanBankName) && !blankPtr(p.PekerjaanAccountNumber) && !blankPtr(p.PekerjaanAccountName) {
		score += 25
	}
	return score
}

func Overall(s Sections) int {
	return int(math.Round(float64(s.BaseInfo+s.Team+s.Milestones+s.Payment) / 4))
}

// Compute menjalankan semua kalkulator untuk satu pekerjaan
func Compute(p *projModel.Project, milestones []msModel.Milestone, installments []payModel.Installment) Sections {
	s := Sections{
		BaseInfo:   BaseInfo(p.PekerjaanProjectName, p.Description()),
		Team:       Team(p.Team()),
		Milestones: Milestones(milestones),
		Payment:    Payment(p, installments),
	}
	s.Overall = Overall(s)
	return s
}

// NextCreationStatus:
//   - semua bagian 100 -> completed
//   - sebelumnya completed tapi kini belum -> in_progress
//   - belum ada isian sama sekali dan masih created -> created
//   - selain itu in_progress
func NextCreationStatus(prev projModel.CreationStatus, s Sections) projModel.CreationStatus {
	switch {
	case s.AllComplete():
		return projModel.CreationCompleted
	case prev == projModel.CreationCompleted:
		return projModel.CreationInProgress
	case s.Overall == 0 && (prev == projModel.CreationCreated || prev == ""):
		return projModel.CreationCreated
	}
	return projModel.CreationInProgress
}

// ProgressStatus diturunkan dari status & persentase milestone
func ProgressStatus(items []msModel.Milestone) projModel.ProgressStatus {
	if len(items) == 0 {
		return projModel.ProgressNotStarted
	}
	total, started := 0, false
	for _, m := range items {
		total += msModel.ClampCompletion(m.MilestoneCompletion)
		if m.MilestoneStatus == msModel.StatusInProgress || m.MilestoneStatus == msModel.StatusCompleted {
			started = true
		}
	}
	if total == 100*len(items) {
		return projModel.ProgressDone
	}
	if started {
		return projModel.ProgressInProgress
	}
	return projModel.ProgressNotStarted
}
