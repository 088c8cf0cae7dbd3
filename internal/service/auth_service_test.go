package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/config"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8}
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, roles ...model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	assert.NoError(t, err)
	u := &model.User{
		ID:       uuid.New(),
		Name:     "Test",
		LastName: "User",
		Email:    email,
		Password: string(hash),
		Status:   model.UserStatusActive,
		BranchID: uuid.New(),
		Roles:    roles,
	}
	repo.users[u.ID] = u
	return u
}

func roleWithPermissions(name string, keys ...string) model.Role {
	perms := make([]model.Permission, len(keys))
	for i, k := range keys {
		perms[i] = model.Permission{ID: uuid.New(), Key: k}
	}
	return model.Role{ID: uuid.New(), Name: name, CompanyID: uuid.New(), Permissions: perms}
}

func tokenPermissions(t *testing.T, token string) []string {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	raw, ok := claims["permissions"].([]interface{})
	assert.True(t, ok, "token missing permissions claim")
	keys := make([]string, len(raw))
	for i, v := range raw {
		keys[i] = v.(string)
	}
	return keys
}

func TestLoginTokenCarriesUnionOfAllRoles(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "multi@example.com", "secret123",
		roleWithPermissions("Support", model.PermViewClients, model.PermViewUsers),
		roleWithPermissions("HR", model.PermManageUsers, model.PermViewUsers),
	)
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "multi@example.com", Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	keys := tokenPermissions(t, resp.Token)
	assert.ElementsMatch(t,
		[]string{model.PermViewClients, model.PermViewUsers, model.PermManageUsers},
		keys, "expected the deduplicated union across every assigned role")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "known@example.com", "secret123")
	svc := NewAuthService(repo, newTestCfg())

	_, errWrongPassword := svc.Login(context.Background(), dto.LoginRequest{
		Email: "known@example.com", Password: "wrong-password",
	})
	_, errUnknownEmail := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})

	assert.Error(t, errWrongPassword)
	assert.Error(t, errUnknownEmail)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())

	var apiErr *apierror.Error
	assert.ErrorAs(t, errWrongPassword, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestLoginStoreFailureIsNotACredentialError(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "known@example.com", "secret123")
	repo.findByEmailErr = errors.New("connection refused")
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "known@example.com", Password: "secret123",
	})
	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status, "a store outage must not render as invalid credentials")
}

func TestRegisterCreatesUserWithoutRoles(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "New", LastName: "Person", Email: "new@example.com",
		Password: "secret123", BranchID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Nil(t, repo.lastRoleIDs, "self-registration must not grant roles")

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errDuplicatePair
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Dup", LastName: "User", Email: "dup@example.com",
		Password: "secret123", BranchID: uuid.New(),
	})
	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
}

func TestProfileDeduplicatesPermissionsAcrossRoles(t *testing.T) {
	shared := model.Permission{ID: uuid.New(), Key: model.PermViewClients}
	roleA := model.Role{ID: uuid.New(), Name: "A", Permissions: []model.Permission{shared}}
	roleB := model.Role{ID: uuid.New(), Name: "B", Permissions: []model.Permission{
		shared, {ID: uuid.New(), Key: model.PermManageClients},
	}}

	repo := newStubUserRepo()
	u := seedUser(t, repo, "profile@example.com", "secret123", roleA, roleB)
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Profile(context.Background(), u.ID)
	assert.NoError(t, err)
	assert.Len(t, resp.Roles, 2)
	assert.Len(t, resp.Permissions, 2, "shared permission must appear once")
}

func TestProfileUnknownUserIsNotFound(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newTestCfg())
	_, err := svc.Profile(context.Background(), uuid.New())
	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
