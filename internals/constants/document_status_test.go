package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStatusCanMoveTo(t *testing.T) {
	cases := []struct {
		from, to DocumentStatus
		ok       bool
	}{
		{DocumentStatusDraft, DocumentStatusPending, true},
		{DocumentStatusPending, DocumentStatusSigned, true},
		{DocumentStatusSigned, DocumentStatusActive, true},
		{DocumentStatusActive, DocumentStatusExpired, true},
		{DocumentStatusActive, DocumentStatusArchived, true},
		{DocumentStatusActive, DocumentStatusPending, false},
		{DocumentStatusArchived, DocumentStatusExpired, false},
		{DocumentStatusExpired, DocumentStatusArchived, false},
		{DocumentStatusSigned, DocumentStatusSigned, false},
		{DocumentStatusExpired, DocumentStatusCancelled, true},
		{DocumentStatusPending, DocumentStatusRejected, true},
		{DocumentStatusCancelled, DocumentStatusActive, false},
		{DocumentStatusFinalized, DocumentStatusRejected, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanMoveTo(c.to), "%s -> %s", c.from, c.to)
	}
}
