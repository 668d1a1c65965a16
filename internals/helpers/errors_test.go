package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("name", "kosong"), fiber.StatusBadRequest},
		{NotFound("x"), fiber.StatusNotFound},
		{Conflict("x"), fiber.StatusConflict},
		{Forbidden("x"), fiber.StatusForbidden},
		{Integration(401, "sso", nil), fiber.StatusBadGateway},
		{Internal("x", errors.New("boom")), fiber.StatusInternalServerError},
		{fmt.Errorf("wrap: %w", NotFound("x")), fiber.StatusNotFound},
		{gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{&pgconn.PgError{Code: "23505"}, fiber.StatusConflict},
		{&pgconn.PgError{Code: "23503"}, fiber.StatusBadRequest},
		{fiber.NewError(fiber.StatusTooManyRequests, "pelan"), fiber.StatusTooManyRequests},
		{errors.New("acak"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestAppError_Message(t *testing.T) {
	err := Validation("project_fee", "Project fee must be greater than %d", 0)

	assert.Equal(t, "Project fee must be greater than 0 (project_fee)", err.Error())
	assert.Equal(t, "project_fee", FieldOf(err))
	assert.Equal(t, "", FieldOf(errors.New("lain")))
	assert.True(t, IsAppError(fmt.Errorf("ctx: %w", err)))
}

func serve(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/", func(c *fiber.Ctx) error { return err })

	resp, e := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, e)
	defer resp.Body.Close()

	raw, e := io.ReadAll(resp.Body)
	require.NoError(t, e)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestFromFiberError_Shapes(t *testing.T) {
	status, body := serve(t, Validation("client_id", "Client ID is required"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", body.ErrorCode)
	assert.Equal(t, []string{"Client ID is required"}, body.Errors["client_id"])

	status, body = serve(t, Integration(401, "invalid_grant", nil))
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body.Message, "downstream status 401")

	status, body = serve(t, Internal("query gagal", errors.New("pq: rahasia")))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.False(t, body.Success)
}
