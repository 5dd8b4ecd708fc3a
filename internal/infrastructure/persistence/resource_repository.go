package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ResourceRepository implements uniform CRUD access for a single resource
// type. The store's "record not found" signal is translated to
// shared.ErrNotFound so callers can distinguish it from other failures.
type ResourceRepository[M any] struct {
	db *gorm.DB
}

// NewResourceRepository creates a repository for the given model type
func NewResourceRepository[M any](db *gorm.DB) *ResourceRepository[M] {
	return &ResourceRepository[M]{db: db}
}

// FindAll returns every record in store order
func (r *ResourceRepository[M]) FindAll(ctx context.Context) ([]M, error) {
	var records []M
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID returns the record with the given primary key
func (r *ResourceRepository[M]) FindByID(ctx context.Context, id uint) (*M, error) {
	var record M
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a new record; the store assigns the primary key
func (r *ResourceRepository[M]) Create(ctx context.Context, record *M) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Save persists the full state of an existing record
func (r *ResourceRepository[M]) Save(ctx context.Context, record *M) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteByID removes the record with the given primary key and returns its
// prior state. A missing record yields shared.ErrNotFound; deletes are not
// replayed, so a repeat delete yields shared.ErrNotFound again.
func (r *ResourceRepository[M]) DeleteByID(ctx context.Context, id uint) (*M, error) {
	record, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return record, nil
}
