package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"gorm.io/gorm"
)

// ErrNoRecord is returned by repositories when a lookup matches nothing.
var ErrNoRecord = errors.New("member: no matching record")

// Repository persists member records. Identifiers are 24-char hex strings
// already validated by the caller.
type Repository interface {
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Create(ctx context.Context, member *model.Member) error
	FindByPhone(ctx context.Context, phone string) (*model.Member, error)
	FindByStatus(ctx context.Context, status model.MemberStatus) ([]model.Member, error)
	// UpdateStatus reports whether a record matched, even when it already had the status.
	UpdateStatus(ctx context.Context, id string, status model.MemberStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GormRepository stores members in the SQL members table
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("phone = ?", phone).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *GormRepository) FindByPhone(ctx context.Context, phone string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find by phone: %w", ErrNoRecord)
		}
		return nil, err
	}
	return &member, nil
}

func (r *GormRepository) FindByStatus(ctx context.Context, status model.MemberStatus) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormRepository) UpdateStatus(ctx context.Context, id string, status model.MemberStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
