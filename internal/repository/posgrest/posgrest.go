package posgrest

import (
	"context"
	"errors"

	"github.com/chainpay/gateway/internal/models"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition, e.g.
// GetBy(ctx, "merchant_id = ?", merchantID).
func (r *repository[T]) GetBy(ctx context.Context, query string, args ...interface{}) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// UpdateFields applies a conditional partial update and reports how many rows
// matched. A zero count means the condition no longer held, which is how the
// ledger detects a lost pending -> terminal race.
func (r *repository[T]) UpdateFields(ctx context.Context, values map[string]interface{}, query string, args ...interface{}) (int64, error) {
	var entity T
	res := r.db.WithContext(ctx).Model(&entity).Where(query, args...).Updates(values)
	return res.RowsAffected, res.Error
}
