package event

import (
	"context"

	"github.com/ktmtfamily/family-tree-api/internal/model"
	"gorm.io/gorm"
)

// Repository persists events addressed by their generated id
type Repository interface {
	List(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	// Update replaces every field but the id. An unknown id is not an error.
	Update(ctx context.Context, event *model.Event) error
	// Delete removes the event. An unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// GormRepository stores events in the SQL events table
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *GormRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", event.ID).
		Select("title", "description", "date", "location", "image_url", "registration_link").
		Updates(event).Error
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{}).Error
}
