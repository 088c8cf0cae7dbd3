package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/middleware"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func TestRespondWrapsDataInEnvelope(t *testing.T) {
	r := testRouter()
	r.GET("/thing", func(c *gin.Context) {
		respondMessage(c, http.StatusOK, gin.H{"id": "1"}, "done")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, map[string]interface{}{"id": "1"}, body["data"])
}

func TestRespondPagedShape(t *testing.T) {
	r := testRouter()
	r.GET("/things", func(c *gin.Context) {
		respondPaged(c, http.StatusOK, []string{"a", "b"},
			dto.Pagination{Page: 1, PageSize: 10, Total: 2, TotalPages: 1})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Rows       []string       `json:"rows"`
			Pagination dto.Pagination `json:"pagination"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"a", "b"}, body.Data.Rows)
	assert.Equal(t, int64(2), body.Data.Pagination.Total)
}

func TestValidationFailureRendersErrorEnvelope(t *testing.T) {
	r := testRouter()
	r.POST("/users", func(c *gin.Context) {
		var req dto.CreateUserRequest
		if !bindAndValidate(c, &req) {
			return
		}
		respond(c, http.StatusCreated, req)
	})

	// Missing almost everything; email malformed.
	payload := `{"email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
		Path string `json:"path"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "/users", body.Path)
	assert.Equal(t, "email", body.Error.Details["Email"])
	assert.Equal(t, "required", body.Error.Details["Name"])
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	r := testRouter()
	r.POST("/users", func(c *gin.Context) {
		var req dto.CreateUserRequest
		if !bindAndValidate(c, &req) {
			return
		}
		respond(c, http.StatusCreated, req)
	})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidPathUUIDIsBadRequest(t *testing.T) {
	r := testRouter()
	r.GET("/things/:id", func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		respond(c, http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
