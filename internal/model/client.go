package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer record scoped to a branch, optionally owned by the
// user (agent) who manages the relationship.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Email     string
	Notes     string
	BranchID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Branch    *Branch    `gorm:"constraint:OnDelete:RESTRICT"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	User      *User      `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
