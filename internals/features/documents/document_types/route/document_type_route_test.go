package route_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bantal_backend/internals/features/documents/document_types/route"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

type countingReloader struct{ calls int }

func (r *countingReloader) Reload(context.Context, *gorm.DB) error {
	r.calls++
	return nil
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
	Errors    map[string]any  `json:"errors"`
}

func newApp(t *testing.T, role string) (*fiber.App, *countingReloader) {
	t.Helper()
	db := testutil.NewDB(t)
	reloader := &countingReloader{}

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocIdentityRole, role)
		return c.Next()
	})
	route.DocumentTypeRoutes(app.Group("/api"), db, reloader)
	return app, reloader
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestListDocumentTypes(t *testing.T) {
	app, _ := newApp(t, "user")

	status, out := do(t, app, http.MethodGet, "/api/document-types", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, out.Success)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &rows))
	assert.Len(t, rows, 3)
}

func TestGetDocumentTypeByShorthand(t *testing.T) {
	app, _ := newApp(t, "user")

	status, _ := do(t, app, http.MethodGet, "/api/document-types/spk", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/api/document-types/PWN", "")
	assert.Equal(t, http.StatusOK, status)

	status, out := do(t, app, http.MethodGet, "/api/document-types/XYZ", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.ErrorCode)
}

func TestCreateDocumentTypeReloadsRegistry(t *testing.T) {
	app, reloader := newApp(t, "admin")

	status, out := do(t, app, http.MethodPost, "/api/document-types",
		`{"document_type_name":"Berita Acara","document_type_shorthand":"BA"}`)
	require.Equal(t, http.StatusCreated, status, out.Message)
	assert.Equal(t, 1, reloader.calls)

	status, out = do(t, app, http.MethodPost, "/api/document-types",
		`{"document_type_name":"berita acara","document_type_shorthand":"BA2"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", out.ErrorCode)
	assert.Equal(t, 1, reloader.calls)
}

func TestCreateDocumentTypeRejects(t *testing.T) {
	t.Run("role bukan admin", func(t *testing.T) {
		app, reloader := newApp(t, "manager")
		status, out := do(t, app, http.MethodPost, "/api/document-types",
			`{"document_type_name":"Berita Acara","document_type_shorthand":"BA"}`)
		assert.Equal(t, http.StatusForbidden, status)
		assert.False(t, out.Success)
		assert.Zero(t, reloader.calls)
	})

	t.Run("handler tidak dikenal", func(t *testing.T) {
		app, reloader := newApp(t, "admin")
		status, out := do(t, app, http.MethodPost, "/api/document-types",
			`{"document_type_name":"Berita Acara","document_type_shorthand":"BA","document_type_handler":"memo"}`)
		assert.GreaterOrEqual(t, status, 400)
		assert.Less(t, status, 500)
		assert.False(t, out.Success)
		assert.Zero(t, reloader.calls)
	})
}
