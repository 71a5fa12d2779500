package model

import (
	"time"
)

// BaseEntity carries audit timestamps. GORM fills them on create/update;
// the Mongo repositories set them explicitly. Documents written before these
// fields existed decode with zero values.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" bson:"updatedAt,omitempty"`
}

// Touch sets both timestamps for a new record.
func (b *BaseEntity) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// All lists the models backed by SQL tables, in creation order.
func All() []any {
	return []any{
		&Member{},
		&Event{},
		&Setting{},
	}
}
