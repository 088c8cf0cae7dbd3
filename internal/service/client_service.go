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

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientView, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.ClientView, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientView, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientView, error) {
	client := &model.Client{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
		BranchID: req.BranchID,
		UserID:   req.UserID,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, client.ID)
}

func (s *clientService) List(ctx context.Context, q dto.ListQuery) ([]dto.ClientView, dto.Pagination, error) {
	q.Normalize()
	clients, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.ClientView, len(clients))
	for i, c := range clients {
		views[i] = dto.NewClientView(c)
	}
	return views, dto.NewPagination(q, total), nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientView, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Client", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewClientView(*client)
	return &view, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientView, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Client", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.BranchID != nil {
		client.BranchID = *req.BranchID
	}
	if req.UserID != nil {
		client.UserID = req.UserID
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Client", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}
