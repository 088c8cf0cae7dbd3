package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Jim-flores/odontosys-bk/internal/model"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, permissions []string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":     "8a2e7a2c-0000-4000-8000-000000000001",
		"email":       "guard@example.com",
		"permissions": permissions,
		"exp":         time.Now().Add(dur).Unix(),
		"iat":         time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func guardedRouter(required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/guarded", JWTAuth(testSecret), RequirePermission(required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGuarded(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	w := doGuarded(guardedRouter(model.PermManageUsers), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "/guarded", body["path"])
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	token := signToken(t, []string{model.PermManageUsers}, -time.Hour)
	w := doGuarded(guardedRouter(model.PermManageUsers), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermissionForbidsMissingKey(t *testing.T) {
	token := signToken(t, []string{model.PermViewClients, model.PermViewUsers}, time.Hour)
	w := doGuarded(guardedRouter(model.PermManageRoles), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAcceptsAnyListedKey(t *testing.T) {
	token := signToken(t, []string{model.PermViewUsers}, time.Hour)
	// manage_users OR view_users guards the read endpoints.
	w := doGuarded(guardedRouter(model.PermManageUsers, model.PermViewUsers), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthRejectsWrongSignature(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "x", "permissions": []string{model.PermManageUsers},
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	w := doGuarded(guardedRouter(model.PermManageUsers), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
