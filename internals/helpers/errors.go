// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ===============================
   Error taxonomy
=================================*/

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrIntegration = errors.New("integration error")
	ErrInternal    = errors.New("internal error")
)

// AppError membawa jenis error (salah satu sentinel di atas) plus konteks.
// Status hanya diisi untuk IntegrationError (status dari layanan hilir).
type AppError struct {
	Kind    error
	Field   string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	out := []error{e.Kind}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func Validation(field, format string, args ...any) *AppError {
	return &AppError{Kind: ErrValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *AppError {
	return &AppError{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

// Integration membungkus kegagalan layanan hilir dengan status & pesan aslinya.
func Integration(status int, message string, err error) *AppError {
	return &AppError{Kind: ErrIntegration, Status: status, Message: message, Err: err}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: ErrInternal, Message: message, Err: err}
}

// FieldOf mengembalikan nama field dari AppError (kosong bila tidak ada).
func FieldOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Field
	}
	return ""
}

/* ===============================
   DB error mapping (pgx / libpq)
=================================*/

func mapPGCode(code string) (int, string, bool) {
	switch code {
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation).", true
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).", true
	case "23502":
		return http.StatusBadRequest, "Kolom wajib kosong (not null violation).", true
	}
	return 0, "", false
}

// TranslateDBError mengubah error driver menjadi AppError bila dikenali.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AppError{Kind: ErrNotFound, Message: "data tidak ditemukan", Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &AppError{Kind: ErrConflict, Message: "Data duplikat (unique violation).", Err: err}
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if status, msg, ok := mapPGCode(pgxErr.Code); ok {
			return statusToAppError(status, msg, err)
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if status, msg, ok := mapPGCode(string(pqErr.Code)); ok {
			return statusToAppError(status, msg, err)
		}
	}
	return err
}

func statusToAppError(status int, msg string, err error) *AppError {
	switch status {
	case http.StatusConflict:
		return &AppError{Kind: ErrConflict, Message: msg, Err: err}
	default:
		return &AppError{Kind: ErrValidation, Message: msg, Err: err}
	}
}

/* ===============================
   HTTP mapping
=================================*/

// StatusOf menentukan HTTP status untuk sebuah error domain.
func StatusOf(err error) int {
	err = TranslateDBError(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrIntegration):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// JsonAppError menulis error domain dalam bentuk ErrorResponse standar.
func JsonAppError(c *fiber.Ctx, err error) error {
	err = TranslateDBError(err)
	status := StatusOf(err)

	var ae *AppError
	if errors.As(err, &ae) {
		msg := ae.Message
		if ae.Kind == ErrIntegration && ae.Status > 0 {
			msg = fmt.Sprintf("%s (downstream status %d)", ae.Message, ae.Status)
		}
		if ae.Kind == ErrInternal {
			msg = "Internal Server Error"
		}
		if ae.Field != "" {
			return JsonFieldError(c, status, msg, map[string][]string{ae.Field: {ae.Message}})
		}
		return JsonError(c, status, msg)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if status >= 500 {
		return JsonError(c, status, "Internal Server Error")
	}
	return JsonError(c, status, err.Error())
}

func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}
