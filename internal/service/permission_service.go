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

type PermissionService interface {
	Create(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionDetail, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.PermissionDetail, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PermissionDetail, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePermissionRequest) (*dto.PermissionDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type permissionService struct {
	repo repository.PermissionRepository
}

func NewPermissionService(repo repository.PermissionRepository) PermissionService {
	return &permissionService{repo: repo}
}

func (s *permissionService) Create(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionDetail, error) {
	perm := &model.Permission{
		Key:         req.Key,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, perm); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("A permission with this key already exists")
		}
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, perm.ID)
}

func (s *permissionService) List(ctx context.Context, q dto.ListQuery) ([]dto.PermissionDetail, dto.Pagination, error) {
	q.Normalize()
	perms, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.PermissionDetail, len(perms))
	for i, p := range perms {
		views[i] = dto.NewPermissionDetail(p)
	}
	return views, dto.NewPagination(q, total), nil
}

func (s *permissionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PermissionDetail, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Permission", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewPermissionDetail(*perm)
	return &view, nil
}

func (s *permissionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePermissionRequest) (*dto.PermissionDetail, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Permission", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Key != nil {
		perm.Key = *req.Key
	}
	if req.Description != nil {
		perm.Description = *req.Description
	}
	if err := s.repo.Update(ctx, perm); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("A permission with this key already exists")
		}
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *permissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Permission", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}
