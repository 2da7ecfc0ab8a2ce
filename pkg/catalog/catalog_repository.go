package catalog

import (
	"context"

	"Recipe-Catalog-API/entities"

	"gorm.io/gorm"
)

type (
	// OwnedEntity covers the write-once collections a user owns. One generic
	// repository serves every kind instead of one hand-written repository per
	// entity.
	OwnedEntity interface {
		entities.Tag | entities.Ingredient
	}

	Repository[T OwnedEntity] interface {
		ListByUser(ctx context.Context, userID string) ([]T, error)
		Create(ctx context.Context, item *T) error
	}

	ownedRepository[T OwnedEntity] struct {
		db *gorm.DB
	}
)

func NewRepository[T OwnedEntity](db *gorm.DB) Repository[T] {
	return &ownedRepository[T]{db: db}
}

// ListByUser returns only the caller's rows, name descending. The id
// tie-break keeps equal names in insertion order.
func (r *ownedRepository[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name desc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ownedRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}
