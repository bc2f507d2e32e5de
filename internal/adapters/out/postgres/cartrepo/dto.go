// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart has no row of its own: it is the set of cart_items
// rows sharing a client id, so an empty cart and an absent cart are the same
// thing.
package cartrepo

import (
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one cart line. The composite key enforces at most
// one line per (client, product) pair at the storage level.
type CartItemDTO struct {
	ClientID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its line rows.
func fromDomain(aggregate *cart.Cart) []CartItemDTO {
	clientID := aggregate.ClientID().Bytes()

	dtos := make([]CartItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		dtos = append(dtos, CartItemDTO{
			ClientID:  clientID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
		})
	}

	return dtos
}

// toDomain reconstructs a cart aggregate from its line rows.
func toDomain(clientID kernel.UUID, dtos []CartItemDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(productID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(clientID, lines)
}
