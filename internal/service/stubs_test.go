package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

// In-memory repository stubs shared by the service tests. Constraint
// failures are simulated with real pgconn errors so the services exercise
// the same translation paths as against Postgres.

var errDuplicatePair = &pgconn.PgError{Code: "23505"}

type stubUserRepo struct {
	users map[uuid.UUID]*model.User

	createErr      error
	updateErr      error
	findByEmailErr error

	// captured arguments from the last Create/Update call
	lastRoleIDs    []uuid.UUID
	lastRoleIDsSet bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User, roleIDs []uuid.UUID) error {
	if r.createErr != nil {
		return r.createErr
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.lastRoleIDs = roleIDs
	r.lastRoleIDsSet = roleIDs != nil
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, q dto.UserListQuery) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User, roleIDs []uuid.UUID) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastRoleIDs = roleIDs
	r.lastRoleIDsSet = roleIDs != nil
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRoleRepo struct {
	roles    map[uuid.UUID]*model.Role
	assigned map[[2]uuid.UUID]bool

	assignErr error

	lastPermissionIDs    []uuid.UUID
	lastPermissionIDsSet bool
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{
		roles:    make(map[uuid.UUID]*model.Role),
		assigned: make(map[[2]uuid.UUID]bool),
	}
}

func (r *stubRoleRepo) Create(_ context.Context, role *model.Role, permissionIDs []uuid.UUID) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	r.lastPermissionIDs = permissionIDs
	r.lastPermissionIDsSet = permissionIDs != nil
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *role
	return &copied, nil
}

func (r *stubRoleRepo) List(_ context.Context, q dto.ListQuery) ([]model.Role, int64, error) {
	out := make([]model.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, int64(len(out)), nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *model.Role, permissionIDs []uuid.UUID) error {
	r.lastPermissionIDs = permissionIDs
	r.lastPermissionIDsSet = permissionIDs != nil
	copied := *role
	r.roles[role.ID] = &copied
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.roles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *stubRoleRepo) AssignUser(_ context.Context, userID, roleID uuid.UUID) error {
	if r.assignErr != nil {
		return r.assignErr
	}
	key := [2]uuid.UUID{userID, roleID}
	if r.assigned[key] {
		return errDuplicatePair
	}
	r.assigned[key] = true
	return nil
}

func (r *stubRoleRepo) UnassignUser(_ context.Context, userID, roleID uuid.UUID) (int64, error) {
	key := [2]uuid.UUID{userID, roleID}
	if !r.assigned[key] {
		return 0, nil
	}
	delete(r.assigned, key)
	return 1, nil
}
