package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a staff account. The password column stores the bcrypt digest,
// never the plaintext, and is excluded from every JSON rendering.
type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string     `gorm:"not null"`
	LastName string     `gorm:"not null"`
	Email    string     `gorm:"uniqueIndex;not null"`
	Password string     `gorm:"not null" json:"-"`
	Status   UserStatus `gorm:"type:varchar(20);not null;default:active"`

	// Optional profile fields
	DNI     *string `gorm:"column:dni;type:varchar(20)"`
	Phone   *string `gorm:"type:varchar(20)"`
	Address *string

	BranchID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Branch    *Branch   `gorm:"constraint:OnDelete:RESTRICT"`
	Roles     []Role    `gorm:"many2many:user_roles;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRole is the explicit user↔role join row. The composite primary key
// makes the store reject a duplicate assignment pair.
type UserRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

func (UserRole) TableName() string { return "user_roles" }
