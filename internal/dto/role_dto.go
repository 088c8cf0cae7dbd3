package dto

import "github.com/google/uuid"

type CreateRoleRequest struct {
	Name          string      `json:"name"          validate:"required,min=1,max=100"`
	Description   string      `json:"description"   validate:"max=500"`
	CompanyID     uuid.UUID   `json:"companyId"     validate:"required"`
	PermissionIDs []uuid.UUID `json:"permissionIds"`
}

// UpdateRoleRequest: a nil PermissionIDs slice leaves the attachment
// untouched; a non-nil slice (including empty) replaces the full set.
type UpdateRoleRequest struct {
	Name          *string     `json:"name"          validate:"omitempty,min=1,max=100"`
	Description   *string     `json:"description"   validate:"omitempty,max=500"`
	CompanyID     *uuid.UUID  `json:"companyId"`
	PermissionIDs []uuid.UUID `json:"permissionIds"`
}

// AssignmentView is the response of a role-to-user assignment: both sides
// of the new join row, with the role's permissions attached.
type AssignmentView struct {
	User UserSummary         `json:"user"`
	Role RoleWithPermissions `json:"role"`
}
