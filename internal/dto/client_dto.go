package dto

import "github.com/google/uuid"

type CreateClientRequest struct {
	Name     string     `json:"name"     validate:"required,min=1,max=100"`
	LastName string     `json:"lastName" validate:"required,min=1,max=100"`
	Phone    string     `json:"phone"    validate:"max=20"`
	Email    string     `json:"email"    validate:"omitempty,email"`
	Notes    string     `json:"notes"    validate:"max=1000"`
	BranchID uuid.UUID  `json:"branchId" validate:"required"`
	UserID   *uuid.UUID `json:"userId"`
}

type UpdateClientRequest struct {
	Name     *string    `json:"name"     validate:"omitempty,min=1,max=100"`
	LastName *string    `json:"lastName" validate:"omitempty,min=1,max=100"`
	Phone    *string    `json:"phone"    validate:"omitempty,max=20"`
	Email    *string    `json:"email"    validate:"omitempty,email"`
	Notes    *string    `json:"notes"    validate:"omitempty,max=1000"`
	BranchID *uuid.UUID `json:"branchId"`
	UserID   *uuid.UUID `json:"userId"`
}
