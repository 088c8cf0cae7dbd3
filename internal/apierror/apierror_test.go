package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDBMapsDriverErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "CONFLICT"},
		{"fk violation on write", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest, "BAD_REQUEST"},
		{"not null violation", &pgconn.PgError{Code: "23502"}, http.StatusBadRequest, "BAD_REQUEST"},
		{"string too long", &pgconn.PgError{Code: "22001"}, http.StatusBadRequest, "BAD_REQUEST"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDB(tc.err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantCode, got.Code)
		})
	}
}

func TestFromDBPassesThroughAPIErrors(t *testing.T) {
	orig := NotFound("User", "abc")
	got := FromDB(orig)
	assert.Same(t, orig, got)
}

func TestFromDeleteTreatsFKAsConflict(t *testing.T) {
	got := FromDelete(&pgconn.PgError{Code: "23503"})
	assert.Equal(t, http.StatusConflict, got.Status)

	// Other classes keep their write-path mapping.
	got = FromDelete(gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
