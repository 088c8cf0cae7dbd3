package dto

import "github.com/google/uuid"

type CreateBranchRequest struct {
	Name      string    `json:"name"      validate:"required,min=1,max=150"`
	Address   string    `json:"address"   validate:"max=250"`
	Phone     string    `json:"phone"     validate:"max=20"`
	CompanyID uuid.UUID `json:"companyId" validate:"required"`
}

type UpdateBranchRequest struct {
	Name      *string    `json:"name"      validate:"omitempty,min=1,max=150"`
	Address   *string    `json:"address"   validate:"omitempty,max=250"`
	Phone     *string    `json:"phone"     validate:"omitempty,max=20"`
	CompanyID *uuid.UUID `json:"companyId"`
}
