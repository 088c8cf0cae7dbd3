package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/model"
)

type RoleRepository interface {
	// Create persists the role and attaches its permissions atomically.
	Create(ctx context.Context, role *model.Role, permissionIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Role, int64, error)
	// Update saves scalar fields; when permissionIDs is non-nil the whole
	// permission set is replaced in the same transaction.
	Update(ctx context.Context, role *model.Role, permissionIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Join-row lifecycle for user assignments. AssignUser surfaces the
	// store's duplicate-pair rejection; UnassignUser reports rows removed
	// (zero is a valid no-op).
	AssignUser(ctx context.Context, userID, roleID uuid.UUID) error
	UnassignUser(ctx context.Context, userID, roleID uuid.UUID) (int64, error)
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) RoleRepository { return &roleRepo{db: db} }

func roleIncludes(db *gorm.DB) *gorm.DB {
	return db.Preload("Company").Preload("Permissions").Preload("Users")
}

func replaceRolePermissions(tx *gorm.DB, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	if err := tx.Where("role_id = ?", roleID).Delete(&model.RolePermission{}).Error; err != nil {
		return err
	}
	if len(permissionIDs) == 0 {
		return nil
	}
	rows := make([]model.RolePermission, len(permissionIDs))
	for i, permID := range permissionIDs {
		rows[i] = model.RolePermission{RoleID: roleID, PermissionID: permID}
	}
	return tx.Create(&rows).Error
}

func (r *roleRepo) Create(ctx context.Context, role *model.Role, permissionIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Company", "Permissions", "Users").Create(role).Error; err != nil {
			return err
		}
		return replaceRolePermissions(tx, role.ID, permissionIDs)
	})
}

func (r *roleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := roleIncludes(r.db.WithContext(ctx)).First(&role, "id = ?", id).Error
	return &role, err
}

func (r *roleRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Role, int64, error) {
	var roles []model.Role
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Role{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := roleIncludes(r.db.WithContext(ctx)).
		Order("created_at ASC").
		Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize).
		Find(&roles).Error
	return roles, total, err
}

func (r *roleRepo) Update(ctx context.Context, role *model.Role, permissionIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Company", "Permissions", "Users").Save(role).Error; err != nil {
			return err
		}
		if permissionIDs == nil {
			return nil
		}
		return replaceRolePermissions(tx, role.ID, permissionIDs)
	})
}

func (r *roleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Permission attachments go with the role; user assignments RESTRICT,
	// so a role still assigned to users fails at the store.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&model.RolePermission{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Role{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *roleRepo) AssignUser(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *roleRepo) UnassignUser(ctx context.Context, userID, roleID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRole{})
	return res.RowsAffected, res.Error
}
