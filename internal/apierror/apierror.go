// Package apierror defines the error taxonomy rendered to API clients.
// Every 4xx/5xx response goes through this package so internal details
// (stack traces, raw driver errors) never leak to the outside.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error is the canonical application error. Status drives the HTTP
// response, Code is the machine-readable label placed in the envelope.
type Error struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: msg}
}

func NotFound(resource, id string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %s not found", resource, id),
	}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: msg}
}

// Validation carries per-field failures from request binding.
func Validation(fields map[string]string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Validation error",
		Details: fields,
	}
}

// Postgres error classes surfaced by the store. Referential integrity is
// enforced by the DB, not by application logic, so these codes are the
// single source of truth for conflict detection.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
)

// FromDB translates a store error into the API taxonomy:
//
//	unique violation      → 409 Conflict
//	row not found         → 404 NotFound
//	FK violation on write → 400 (related record missing)
//	not-null / too long   → 400
//	anything else         → 500
//
// Delete paths should use FromDelete instead, where an FK violation
// means dependent rows block the deletion.
func FromDB(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Record not found"}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflict("A record with this value already exists")
		case pgForeignKeyViolation:
			return BadRequest("Related record not found")
		case pgNotNullViolation:
			return BadRequest("Required field is missing")
		case pgStringTooLong:
			return BadRequest("Value too long for field")
		}
	}
	return Internal("Database error occurred")
}

// FromDelete is FromDB with delete semantics: an FK violation means the
// row is still referenced, which surfaces as a conflict.
func FromDelete(err error) *Error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return Conflict("Record is referenced by other records and cannot be deleted")
	}
	return FromDB(err)
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// used where a duplicate insert has a dedicated message.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
