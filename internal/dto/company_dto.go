package dto

type CreateCompanyRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"max=500"`
	LogoURL     string `json:"logoUrl"     validate:"omitempty,url"`
}

// Update requests use pointers throughout: only provided fields change.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	LogoURL     *string `json:"logoUrl"     validate:"omitempty,url"`
}
