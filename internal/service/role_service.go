package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
	"github.com/Jim-flores/odontosys-bk/internal/repository"
)

type RoleService interface {
	Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleView, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.RoleView, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RoleView, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) (*dto.RoleView, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// AssignRoleToUser creates the join row; a duplicate pair is a conflict.
	AssignRoleToUser(ctx context.Context, userID, roleID uuid.UUID) (*dto.AssignmentView, error)
	// RemoveRoleFromUser deletes matching join rows; no match is a no-op.
	RemoveRoleFromUser(ctx context.Context, userID, roleID uuid.UUID) error
}

type roleService struct {
	repo  repository.RoleRepository
	users repository.UserRepository
}

func NewRoleService(repo repository.RoleRepository, users repository.UserRepository) RoleService {
	return &roleService{repo: repo, users: users}
}

func (s *roleService) Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleView, error) {
	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		CompanyID:   req.CompanyID,
	}
	if err := s.repo.Create(ctx, role, req.PermissionIDs); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, role.ID)
}

func (s *roleService) List(ctx context.Context, q dto.ListQuery) ([]dto.RoleView, dto.Pagination, error) {
	q.Normalize()
	roles, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.RoleView, len(roles))
	for i, r := range roles {
		views[i] = dto.NewRoleView(r)
	}
	return views, dto.NewPagination(q, total), nil
}

func (s *roleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RoleView, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Role", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewRoleView(*role)
	return &view, nil
}

func (s *roleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) (*dto.RoleView, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Role", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.CompanyID != nil {
		role.CompanyID = *req.CompanyID
	}
	if err := s.repo.Update(ctx, role, req.PermissionIDs); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *roleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Role", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}

func (s *roleService) AssignRoleToUser(ctx context.Context, userID, roleID uuid.UUID) (*dto.AssignmentView, error) {
	// Resolve both sides first so a missing user or role reads as 404
	// rather than a bare FK failure.
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User", userID.String())
		}
		return nil, apierror.FromDB(err)
	}
	role, err := s.repo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Role", roleID.String())
		}
		return nil, apierror.FromDB(err)
	}

	if err := s.repo.AssignUser(ctx, userID, roleID); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("Role is already assigned to this user")
		}
		return nil, apierror.FromDB(err)
	}

	return &dto.AssignmentView{
		User: dto.NewUserSummary(*user),
		Role: dto.NewRoleWithPermissions(*role),
	}, nil
}

func (s *roleService) RemoveRoleFromUser(ctx context.Context, userID, roleID uuid.UUID) error {
	// Deleting zero rows is success: unassign is idempotent.
	if _, err := s.repo.UnassignUser(ctx, userID, roleID); err != nil {
		return apierror.FromDB(err)
	}
	return nil
}
