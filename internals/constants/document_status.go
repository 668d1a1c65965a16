package constants

import "strings"

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusPending   DocumentStatus = "PENDING"
	DocumentStatusSigned    DocumentStatus = "SIGNED"
	DocumentStatusActive    DocumentStatus = "ACTIVE"
	DocumentStatusArchived  DocumentStatus = "ARCHIVED"
	DocumentStatusExpired   DocumentStatus = "EXPIRED"
	DocumentStatusCancelled DocumentStatus = "CANCELLED"
	DocumentStatusRejected  DocumentStatus = "REJECTED"
	DocumentStatusFinalized DocumentStatus = "FINALIZED"
)

var AllDocumentStatuses = []DocumentStatus{
	DocumentStatusDraft,
	DocumentStatusPending,
	DocumentStatusSigned,
	DocumentStatusActive,
	DocumentStatusArchived,
	DocumentStatusExpired,
	DocumentStatusCancelled,
	DocumentStatusRejected,
	DocumentStatusFinalized,
}

func ParseDocumentStatus(s string) (DocumentStatus, bool) {
	up := DocumentStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range AllDocumentStatuses {
		if st == up {
			return st, true
		}
	}
	return "", false
}

// IsTerminal: tidak boleh berpindah status lagi.
func (s DocumentStatus) IsTerminal() bool {
	switch s {
	case DocumentStatusFinalized, DocumentStatusCancelled, DocumentStatusRejected:
		return true
	}
	return false
}

// Rank: urutan maju status. CANCELLED/REJECTED di luar urutan (0).
func (s DocumentStatus) Rank() int {
	switch s {
	case DocumentStatusDraft:
		return 1
	case DocumentStatusPending:
		return 2
	case DocumentStatusSigned:
		return 3
	case DocumentStatusActive:
		return 4
	case DocumentStatusExpired, DocumentStatusArchived:
		return 5
	case DocumentStatusFinalized:
		return 6
	}
	return 0
}

// CanMoveTo: hanya maju, kecuali batal/tolak yang boleh dari status non-terminal mana pun.
func (s DocumentStatus) CanMoveTo(next DocumentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == DocumentStatusCancelled || next == DocumentStatusRejected {
		return true
	}
	return next.Rank() > s.Rank()
}
