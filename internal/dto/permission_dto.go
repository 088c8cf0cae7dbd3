package dto

type CreatePermissionRequest struct {
	Key         string `json:"key"         validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdatePermissionRequest struct {
	Key         *string `json:"key"         validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
