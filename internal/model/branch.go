package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch belongs to exactly one Company and owns users and clients.
// Deleting a branch with dependent rows fails at the store (RESTRICT).
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Address   string
	Phone     string    `gorm:"type:varchar(20)"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Company   *Company  `gorm:"constraint:OnDelete:RESTRICT"`
	Users     []User    `gorm:"foreignKey:BranchID"`
	Clients   []Client  `gorm:"foreignKey:BranchID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
