package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

// CompanyRepository defines the data access contract for companies.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type CompanyRepository interface {
	Create(ctx context.Context, c *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	// FindFirst returns the oldest company: the implicit "actual" tenant record.
	FindFirst(ctx context.Context) (*model.Company, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Company, int64, error)
	Update(ctx context.Context, c *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyRepo struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepo{db: db} }

// companyIncludes is the fixed preload shape for every company read:
// branches plus roles with their permissions.
func companyIncludes(db *gorm.DB) *gorm.DB {
	return db.Preload("Branches").Preload("Roles.Permissions")
}

func (r *companyRepo) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *companyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := companyIncludes(r.db.WithContext(ctx)).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *companyRepo) FindFirst(ctx context.Context) (*model.Company, error) {
	var c model.Company
	err := companyIncludes(r.db.WithContext(ctx)).Order("created_at ASC").First(&c).Error
	return &c, err
}

func (r *companyRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Company, int64, error) {
	var companies []model.Company
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := companyIncludes(r.db.WithContext(ctx)).
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&companies).Error
	return companies, total, err
}

func (r *companyRepo) Update(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Omit("Branches", "Roles").Save(c).Error
}

func (r *companyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
