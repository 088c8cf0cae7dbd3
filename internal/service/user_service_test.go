package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

func TestCreateUserAssignsEveryRequestedRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	roleIDs := []uuid.UUID{uuid.New(), uuid.New()}

	view, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Multi", LastName: "Role", Email: "multi@example.com",
		Password: "secret123", Status: "active",
		BranchID: uuid.New(), Roles: roleIDs,
	})
	assert.NoError(t, err)
	assert.Equal(t, roleIDs, repo.lastRoleIDs)

	stored := repo.users[view.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestUpdateUserPatchLeavesOmittedFieldsAlone(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "patch@example.com", "secret123")
	svc := NewUserService(repo)

	name := "Renamed"
	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Name: &name})
	assert.NoError(t, err)

	stored := repo.users[u.ID]
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, u.LastName, stored.LastName)
	assert.Equal(t, u.Email, stored.Email)
	assert.Equal(t, u.Password, stored.Password)
	assert.False(t, repo.lastRoleIDsSet, "nil role list must leave assignments untouched")
}

func TestUpdateUserEmptyPatchChangesNothing(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "empty@example.com", "secret123")
	svc := NewUserService(repo)

	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{})
	assert.NoError(t, err)

	stored := repo.users[u.ID]
	assert.Equal(t, *u, *stored, "an empty patch must write the row back verbatim")
	assert.False(t, repo.lastRoleIDsSet)
}

func TestUpdateUserReplacesRolesWhenProvided(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "roles@example.com", "secret123")
	svc := NewUserService(repo)

	newRoles := []uuid.UUID{uuid.New()}
	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Roles: newRoles})
	assert.NoError(t, err)
	assert.True(t, repo.lastRoleIDsSet)
	assert.Equal(t, newRoles, repo.lastRoleIDs)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "rehash@example.com", "secret123")
	svc := NewUserService(repo)

	newPassword := "changed456"
	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Password: &newPassword})
	assert.NoError(t, err)

	stored := repo.users[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(newPassword)))
}

func TestUserNotFoundMapsTo404(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	missing := uuid.New()

	_, err := svc.GetByID(context.Background(), missing)
	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	err = svc.Delete(context.Background(), missing)
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestListUsersReturnsPaginationMeta(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@example.com", "secret123")
	seedUser(t, repo, "b@example.com", "secret123")
	svc := NewUserService(repo)

	q := dto.UserListQuery{ListQuery: dto.ListQuery{Page: 1, PageSize: 10}}
	rows, p, err := svc.List(context.Background(), q)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(2), p.Total)
	assert.Equal(t, 1, p.TotalPages)
	for _, v := range rows {
		assert.Equal(t, model.UserStatusActive, v.Status)
	}
}
