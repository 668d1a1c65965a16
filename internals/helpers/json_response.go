// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging: ?page= & ?per_page= (alias lama ?limit=), per_page dibatasi maxPerPage
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page := atoiOr(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	raw := c.Query("per_page")
	if strings.TrimSpace(raw) == "" {
		raw = c.Query("limit")
	}
	perPage := atoiOr(raw, defaultPerPage)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Paging{Page: page, PerPage: perPage, Offset: (page - 1) * perPage, Limit: perPage}
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func BuildPagination(total int64, p Paging, count int) Pagination {
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
		Count:      count,
	}
}

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

var errorCodes = map[int]string{
	fiber.StatusBadRequest:          "BAD_REQUEST",
	fiber.StatusUnauthorized:        "UNAUTHORIZED",
	fiber.StatusForbidden:           "FORBIDDEN",
	fiber.StatusNotFound:            "NOT_FOUND",
	fiber.StatusConflict:            "CONFLICT",
	fiber.StatusUnprocessableEntity: "VALIDATION_ERROR",
	fiber.StatusTooManyRequests:     "TOO_MANY_REQUESTS",
	fiber.StatusBadGateway:          "INTEGRATION_ERROR",
}

func statusToErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	if status >= 500 {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonFieldError: error yang menyebut field tertentu
func JsonFieldError(c *fiber.Ctx, status int, message string, fieldErrors map[string][]string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
		Errors:    fieldErrors,
	})
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return JsonFieldError(c, fiber.StatusUnprocessableEntity, "validation failed", fieldErrors)
}

/* ===============================
   JSON responses (standard success)
=================================*/

// envelope sukses: {success, message, data[, pagination]}
func writeSuccess(c *fiber.Ctx, status int, message, fallback string, data any, pagination *Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	body := fiber.Map{"success": true, "message": message, "data": data}
	if pagination != nil {
		body["pagination"] = pagination
	}
	return c.Status(status).JSON(body)
}

func JsonList(c *fiber.Ctx, message string, data any, pagination *Pagination) error {
	return writeSuccess(c, fiber.StatusOK, message, "ok", data, pagination)
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "ok", data, nil)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusCreated, message, "created", data, nil)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "updated", data, nil)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "deleted", data, nil)
}
