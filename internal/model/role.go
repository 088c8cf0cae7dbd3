package model

import (
	"time"

	"github.com/google/uuid"
)

// Role groups permissions under a company. Users and permissions attach
// through explicit join tables; join rows are created and deleted with the
// owning assignment action, never updated in place.
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	CompanyID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	Company     *Company     `gorm:"constraint:OnDelete:RESTRICT"`
	Permissions []Permission `gorm:"many2many:role_permissions;constraint:OnDelete:RESTRICT"`
	Users       []User       `gorm:"many2many:user_roles;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RolePermission is the explicit role↔permission join row.
type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
}

func (RolePermission) TableName() string { return "role_permissions" }
