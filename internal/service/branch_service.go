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

type BranchService interface {
	Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchView, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.BranchView, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchView, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchService struct {
	repo repository.BranchRepository
}

func NewBranchService(repo repository.BranchRepository) BranchService {
	return &branchService{repo: repo}
}

func (s *branchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchView, error) {
	branch := &model.Branch{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		CompanyID: req.CompanyID,
	}
	if err := s.repo.Create(ctx, branch); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, branch.ID)
}

func (s *branchService) List(ctx context.Context, q dto.ListQuery) ([]dto.BranchView, dto.Pagination, error) {
	q.Normalize()
	branches, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.BranchView, len(branches))
	for i, b := range branches {
		views[i] = dto.NewBranchView(b)
	}
	return views, dto.NewPagination(q, total), nil
}

func (s *branchService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BranchView, error) {
	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Branch", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewBranchView(*branch)
	return &view, nil
}

func (s *branchService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchView, error) {
	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Branch", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.CompanyID != nil {
		branch.CompanyID = *req.CompanyID
	}
	if err := s.repo.Update(ctx, branch); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *branchService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Branch", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}
