package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
	"github.com/Jim-flores/odontosys-bk/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserView, error)
	List(ctx context.Context, q dto.UserListQuery) ([]dto.UserView, dto.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserView, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create persists the user together with ALL provided role assignments.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserView, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		return nil, apierror.Internal("Could not hash password")
	}
	user := &model.User{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: string(hash),
		Status:   model.UserStatus(req.Status),
		DNI:      req.DNI,
		Phone:    req.Phone,
		Address:  req.Address,
		BranchID: req.BranchID,
	}
	if err := s.repo.Create(ctx, user, req.Roles); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("A user with this email already exists")
		}
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, user.ID)
}

func (s *userService) List(ctx context.Context, q dto.UserListQuery) ([]dto.UserView, dto.Pagination, error) {
	q.Normalize()
	users, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, apierror.FromDB(err)
	}
	views := make([]dto.UserView, len(users))
	for i, u := range users {
		views[i] = dto.NewUserView(u)
	}
	return views, dto.NewPagination(q.ListQuery, total), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	view := dto.NewUserView(*user)
	return &view, nil
}

// Update applies patch semantics; a provided role list replaces the full
// assignment set atomically with the scalar update.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User", id.String())
		}
		return nil, apierror.FromDB(err)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Status != nil {
		user.Status = model.UserStatus(*req.Status)
	}
	if req.DNI != nil {
		user.DNI = req.DNI
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.BranchID != nil {
		user.BranchID = *req.BranchID
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), BcryptCost)
		if err != nil {
			return nil, apierror.Internal("Could not hash password")
		}
		user.Password = string(hash)
	}
	if err := s.repo.Update(ctx, user, req.Roles); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("A user with this email already exists")
		}
		return nil, apierror.FromDB(err)
	}
	return s.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("User", id.String())
		}
		return apierror.FromDelete(err)
	}
	return nil
}
