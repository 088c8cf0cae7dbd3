package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Client, int64, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func clientIncludes(db *gorm.DB) *gorm.DB {
	return db.Preload("Branch").Preload("User")
}

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := clientIncludes(r.db.WithContext(ctx)).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := clientIncludes(r.db.WithContext(ctx)).
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&clients).Error
	return clients, total, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Omit("Branch", "User").Save(c).Error
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
