package admin

import (
	"context"
	"errors"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"github.com/ktmtfamily/family-tree-api/internal/shared/database"
	"gorm.io/gorm"
)

// Repository reads and writes the admin credentials settings record
type Repository interface {
	// FindAdminPassword reports found=false when no settings record exists
	// or the record has no password field. An empty password is found.
	FindAdminPassword(ctx context.Context) (password string, found bool, err error)
	// UpsertAdminPassword overwrites the stored password, creating the record if needed.
	UpsertAdminPassword(ctx context.Context, password string) error
}

// GormRepository keeps settings in the SQL settings table
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) FindAdminPassword(ctx context.Context) (string, bool, error) {
	var setting model.Setting
	err := r.db.WithContext(ctx).
		Where("type = ?", model.AdminCredentialsType).
		First(&setting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if setting.Password == nil {
		return "", false, nil
	}
	return *setting.Password, true, nil
}

func (r *GormRepository) UpsertAdminPassword(ctx context.Context, password string) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		var setting model.Setting
		err := tx.Where("type = ?", model.AdminCredentialsType).First(&setting).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&model.Setting{
				Type:     model.AdminCredentialsType,
				Password: &password,
			}).Error
		case err != nil:
			return err
		}

		return tx.Model(&setting).Update("password", password).Error
	})
}
