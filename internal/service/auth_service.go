package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/config"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
	"github.com/Jim-flores/odontosys-bk/internal/repository"
)

// BcryptCost matches the work factor of the seeded credentials.
const BcryptCost = 10

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

// Login verifies credentials and issues a token carrying the flattened
// permission set. Unknown email and wrong password produce the exact same
// error so the endpoint cannot be used to probe for accounts.
//
// The permission snapshot is baked into the token: a permission change
// takes effect on the user's next login, not mid-session.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// Only a missing row reads as bad credentials; a store failure
		// must surface as one, not hide behind a 401.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Invalid credentials")
		}
		return nil, apierror.FromDB(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apierror.Internal("Could not issue token")
	}

	resp := &dto.LoginResponse{
		User: dto.LoginUser{
			ID:       user.ID,
			Name:     user.Name,
			LastName: user.LastName,
			Email:    user.Email,
		},
		Token: token,
	}
	if user.Branch != nil {
		b := dto.NewBranchSummary(*user.Branch)
		resp.User.Branch = &b
	}
	return resp, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		return nil, apierror.Internal("Could not hash password")
	}
	user := &model.User{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: string(hash),
		Status:   model.UserStatusActive,
		BranchID: req.BranchID,
	}
	if err := s.users.Create(ctx, user, nil); err != nil {
		if apierror.IsUniqueViolation(err) {
			return nil, apierror.Conflict("A user with this email already exists")
		}
		return nil, apierror.FromDB(err)
	}
	return &dto.RegisterResponse{
		ID:        user.ID,
		Name:      user.Name,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Profile returns the user with all assigned roles and the union of the
// permissions those roles carry.
func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User", userID.String())
		}
		return nil, apierror.FromDB(err)
	}

	roles := make([]dto.ProfileRole, len(user.Roles))
	seen := make(map[uuid.UUID]bool)
	var perms []dto.ProfilePermission
	for i, role := range user.Roles {
		roles[i] = dto.ProfileRole{ID: role.ID, Name: role.Name}
		for _, p := range role.Permissions {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			perms = append(perms, dto.ProfilePermission{ID: p.ID, Key: p.Key})
		}
	}

	return &dto.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		LastName:    user.LastName,
		Email:       user.Email,
		Status:      string(user.Status),
		CreatedAt:   user.CreatedAt,
		Roles:       roles,
		Permissions: perms,
	}, nil
}

// resolvePermissions flattens the user's roles into a deduplicated set of
// permission keys. Used only at token issuance.
func resolvePermissions(user *model.User) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, role := range user.Roles {
		for _, p := range role.Permissions {
			if !seen[p.Key] {
				seen[p.Key] = true
				keys = append(keys, p.Key)
			}
		}
	}
	return keys
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"email":       user.Email,
		"permissions": resolvePermissions(user),
		"exp":         now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":         now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
