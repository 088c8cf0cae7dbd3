package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant root: it owns branches and the roles defined for them.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	LogoURL     string
	Branches    []Branch `gorm:"foreignKey:CompanyID"`
	Roles       []Role   `gorm:"foreignKey:CompanyID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
