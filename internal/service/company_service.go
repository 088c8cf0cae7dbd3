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

type CompanyService interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyView, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.CompanyView, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CompanyView, error)
	// GetActual returns the implicit tenant record: the oldest company.
	GetActual(ctx context.Context) (*dto.CompanyView, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyView, error)
	UpdateActual(ctx context.Context, req dto.UpdateCompanyRequest) (*dto.CompanyView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyView, error) {
	company := &model.Company{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, apierror.FromDB(err)
	}
	// Re-read with the canonical include shape so create responds with the
	// same denormalized view as getById.
	return s.GetByID(ctx, company.ID)
}

func (s *companyService) List(ctx context.Context, q dto.ListQuery) ([]dto.CompanyView, dto.Pagination, error) {
	q.Normalize()
	companies, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.CompanyView, len(companies))
	for i, c := range companies {
		views[i] = dto.NewCompanyView(c)
	}
	return views, dto.NewPagination(q, total), nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CompanyView, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Company", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewCompanyView(*company)
	return &view, nil
}

func (s *companyService) GetActual(ctx context.Context) (*dto.CompanyView, error) {
	company, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Company", "actual")
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewCompanyView(*company)
	return &view, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyView, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Company", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *companyService) UpdateActual(ctx context.Context, req dto.UpdateCompanyRequest) (*dto.CompanyView, error) {
	company, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Company", "actual")
		}
		return nil, apierror.FromDB(err)
	}
	return s.Update(ctx, company.ID, req)
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Company", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}
