package dto

import (
	"time"

	"github.com/google/uuid"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Name     string    `json:"name"     validate:"required,min=1,max=100"`
	LastName string    `json:"lastName" validate:"required,min=1,max=100"`
	Email    string    `json:"email"    validate:"required,email"`
	Password string    `json:"password" validate:"required,min=6"`
	BranchID uuid.UUID `json:"branchId" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginUser struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	LastName string         `json:"lastName"`
	Email    string         `json:"email"`
	Branch   *BranchSummary `json:"branch,omitempty"`
}

type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileRole deliberately omits the permission list: profile permissions
// are reported as one flattened set across all assigned roles.
type ProfileRole struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProfilePermission struct {
	ID  uuid.UUID `json:"id"`
	Key string    `json:"key"`
}

type ProfileResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	LastName    string              `json:"lastName"`
	Email       string              `json:"email"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	Roles       []ProfileRole       `json:"roles"`
	Permissions []ProfilePermission `json:"permissions"`
}
