package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

type PermissionRepository interface {
	Create(ctx context.Context, p *model.Permission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Permission, int64, error)
	Update(ctx context.Context, p *model.Permission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type permissionRepo struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) PermissionRepository { return &permissionRepo{db: db} }

func (r *permissionRepo) Create(ctx context.Context, p *model.Permission) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *permissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var p model.Permission
	err := r.db.WithContext(ctx).Preload("Roles").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *permissionRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Permission, int64, error) {
	var perms []model.Permission
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Permission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).Preload("Roles").
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&perms).Error
	return perms, total, err
}

func (r *permissionRepo) Update(ctx context.Context, p *model.Permission) error {
	return r.db.WithContext(ctx).Omit("Roles").Save(p).Error
}

func (r *permissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Permission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
