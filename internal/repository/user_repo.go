package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

type UserRepository interface {
	// Create persists the user and its role assignments atomically.
	Create(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindByEmail loads the credential row with roles and their permissions,
	// the shape the login-time permission resolver needs.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, q dto.UserListQuery) ([]model.User, int64, error)
	// Update saves scalar fields; when roleIDs is non-nil the whole
	// assignment set is replaced in the same transaction.
	Update(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func userIncludes(db *gorm.DB) *gorm.DB {
	return db.Preload("Branch").Preload("Roles.Permissions")
}

func replaceUserRoles(tx *gorm.DB, userID uuid.UUID, roleIDs []uuid.UUID) error {
	if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]model.UserRole, len(roleIDs))
	for i, roleID := range roleIDs {
		rows[i] = model.UserRole{UserID: userID, RoleID: roleID}
	}
	return tx.Create(&rows).Error
}

func (r *userRepo) Create(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Branch", "Roles").Create(u).Error; err != nil {
			return err
		}
		return replaceUserRoles(tx, u.ID, roleIDs)
	})
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := userIncludes(r.db.WithContext(ctx)).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := userIncludes(r.db.WithContext(ctx)).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context, q dto.UserListQuery) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	base := r.db.WithContext(ctx).Model(&model.User{})
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where("name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := userIncludes(base).
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&users).Error
	return users, total, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User, roleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Branch", "Roles").Save(u).Error; err != nil {
			return err
		}
		if roleIDs == nil {
			return nil
		}
		return replaceUserRoles(tx, u.ID, roleIDs)
	})
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Role assignments go with the user in one transaction; the join rows
	// have no lifecycle of their own.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
