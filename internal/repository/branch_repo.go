package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Branch, int64, error)
	Update(ctx context.Context, b *model.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func branchIncludes(db *gorm.DB) *gorm.DB {
	return db.Preload("Company").Preload("Users").Preload("Clients")
}

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := branchIncludes(r.db.WithContext(ctx)).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *branchRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Branch, int64, error) {
	var branches []model.Branch
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Branch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := branchIncludes(r.db.WithContext(ctx)).
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&branches).Error
	return branches, total, err
}

func (r *branchRepo) Update(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Omit("Company", "Users", "Clients").Save(b).Error
}

func (r *branchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Branch{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
