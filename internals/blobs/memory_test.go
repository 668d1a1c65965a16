package blobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "bantal_backend/internals/helpers"
)

func TestMemoryStore_Versions(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	pointer, err := s.Store(ctx, []byte("v1"), "")
	require.NoError(t, err)

	n, err := s.AppendVersion(ctx, pointer, []byte("v2"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	latest, err := s.GetLatestVersion(ctx, pointer)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Number)
	assert.Equal(t, []byte("v2"), latest.Content)
	assert.Equal(t, "application/pdf", latest.MimeType)

	versions, err := s.ListVersions(ctx, pointer)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, defaultMime, versions[0].MimeType)
	assert.Equal(t, int64(2), versions[0].Size)
}

func TestMemoryStore_Errors(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Store(ctx, nil, "text/plain")
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = s.AppendVersion(ctx, "tidak-ada", []byte("x"), "")
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = s.GetLatestVersion(ctx, "tidak-ada")
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestMemoryStore_LatestIsACopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	pointer, err := s.Store(ctx, []byte("asli"), "text/plain")
	require.NoError(t, err)

	v, err := s.GetLatestVersion(ctx, pointer)
	require.NoError(t, err)
	v.Content[0] = 'X'

	again, err := s.GetLatestVersion(ctx, pointer)
	require.NoError(t, err)
	assert.Equal(t, []byte("asli"), again.Content)
}
