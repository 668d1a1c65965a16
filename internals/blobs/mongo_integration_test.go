//go:build integration

package blobs_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bantal_backend/internals/blobs"
	"bantal_backend/internals/testutil/containers"
)

func TestMongoStore_AppendOnlyVersions(t *testing.T) {
	mc := containers.NewMongoContainer(t)
	ctx := context.Background()

	store, err := blobs.NewMongoStore(ctx, mc.URI, "bantal_test", "document_blobs")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	pointer, err := store.Store(ctx, []byte("v1"), "application/pdf")
	require.NoError(t, err)

	// append berbarengan tetap menghasilkan nomor versi unik
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AppendVersion(ctx, pointer, []byte("vN"), "application/pdf")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	versions, err := store.ListVersions(ctx, pointer)
	require.NoError(t, err)
	require.Len(t, versions, 5)
	for i, v := range versions {
		assert.Equal(t, i+1, v.Number)
	}

	latest, err := store.GetLatestVersion(ctx, pointer)
	require.NoError(t, err)
	assert.Equal(t, 5, latest.Number)

	_, err = store.GetLatestVersion(ctx, "tidak-ada")
	assert.Error(t, err)
}
