//go:build integration

package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bantal_backend/internals/blobs"
	docTypeModel "bantal_backend/internals/features/documents/document_types/model"
	"bantal_backend/internals/features/documents/factory"
	"bantal_backend/internals/features/documents/lifecycle/dto"
	"bantal_backend/internals/features/documents/lifecycle/service"
	projectService "bantal_backend/internals/features/pekerjaan/projects/service"
	helper "bantal_backend/internals/helpers"
	documentTypes "bantal_backend/internals/seeds/documents/document_types"
	"bantal_backend/internals/testutil"
	"bantal_backend/internals/testutil/containers"
)

func TestPostgres_ConcurrentCreateAssignsDenseIndexes(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, documentTypes.SeedDocumentTypes(pg.DB))
	fx := testutil.SeedFixtures(t, pg.DB)

	reg := factory.NewRegistry(projectService.New(pg.DB))
	require.NoError(t, reg.Build(context.Background(), pg.DB))
	svc := service.New(pg.DB, reg, blobs.NewMemoryStore())

	const n = 8
	payloads := make([][]byte, n)
	for i := range payloads {
		payloads[i] = spkPayload(t, fx, fmt.Sprintf("%03d/SPK/III/2025", i+1), nil)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		indexes []int
		errs    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Create(context.Background(), dto.CreateInput{
				Identifier: "SPK",
				Payload:    payloads[i],
				CreatedBy:  &fx.Identity.IdentityID,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			indexes = append(indexes, res.Master.MasterDocumentIndexNumber)
		}(i)
	}
	wg.Wait()

	require.Empty(t, errs)
	sort.Ints(indexes)
	want := make([]int, n)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, indexes)
}

func TestPostgres_UniqueViolationMapsToConflict(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, documentTypes.SeedDocumentTypes(pg.DB))

	err := pg.DB.Create(&docTypeModel.DocumentType{
		DocumentTypeName:      "Surat Perjanjian Kerja",
		DocumentTypeShorthand: "SPK-2",
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, helper.TranslateDBError(err), helper.ErrConflict)
	assert.Equal(t, 409, helper.StatusOf(err))
}
