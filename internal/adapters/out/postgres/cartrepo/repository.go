package cartrepo

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves the client's cart. A client with no stored lines gets an
// empty cart, not a not-found error.
func (r *GormCartRepository) Get(ctx context.Context, clientID kernel.UUID) (*cart.Cart, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Order("product_id").
		Find(&dtos, "client_id = ?", clientID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(clientID, dtos)
}

// Save persists the cart's current lines, replacing whatever was stored for
// the client.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.Clear(ctx, aggregate.ClientID()); err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Clear removes all of the client's cart lines.
func (r *GormCartRepository) Clear(ctx context.Context, clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("client_id = ?", clientID.Bytes()).
		Delete(&CartItemDTO{}).Error
}
