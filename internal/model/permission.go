package model

import (
	"time"

	"github.com/google/uuid"
)

// Seeded permission keys. Route guards reference these constants so a typo
// cannot silently declare a key that was never seeded.
const (
	PermManageUsers   = "manage_users"
	PermViewUsers     = "view_users"
	PermManageRoles   = "manage_roles"
	PermManageClients = "manage_clients"
	PermViewClients   = "view_clients"
	PermManageCompany = "manage_company"
)

// Permission is a single capability key (e.g. manage_users) attached to
// roles through the role_permissions join table.
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key         string    `gorm:"uniqueIndex;not null"`
	Description string
	Roles       []Role `gorm:"many2many:role_permissions"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
