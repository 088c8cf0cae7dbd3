package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Name     string      `json:"name"     validate:"required,min=1,max=100"`
	LastName string      `json:"lastName" validate:"required,min=1,max=100"`
	Email    string      `json:"email"    validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Status   string      `json:"status"   validate:"required,oneof=active inactive"`
	DNI      *string     `json:"dni"      validate:"omitempty,len=8"`
	Phone    *string     `json:"phone"    validate:"omitempty,len=9"`
	Address  *string     `json:"address"  validate:"omitempty,max=250"`
	BranchID uuid.UUID   `json:"branchId" validate:"required"`
	Roles    []uuid.UUID `json:"roles"    validate:"required,min=1"`
}

// UpdateUserRequest has patch semantics. A nil Roles slice leaves the
// assignment untouched; a non-empty slice replaces the full set.
type UpdateUserRequest struct {
	Name     *string     `json:"name"     validate:"omitempty,min=1,max=100"`
	LastName *string     `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email    *string     `json:"email"    validate:"omitempty,email"`
	Password *string     `json:"password" validate:"omitempty,min=6"`
	Status   *string     `json:"status"   validate:"omitempty,oneof=active inactive"`
	DNI      *string     `json:"dni"      validate:"omitempty,len=8"`
	Phone    *string     `json:"phone"    validate:"omitempty,len=9"`
	Address  *string     `json:"address"  validate:"omitempty,max=250"`
	BranchID *uuid.UUID  `json:"branchId"`
	Roles    []uuid.UUID `json:"roles"    validate:"omitempty,min=1"`
}

// UserListQuery extends the shared pagination contract with the search
// and status filters the users list supports.
type UserListQuery struct {
	ListQuery
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
}
