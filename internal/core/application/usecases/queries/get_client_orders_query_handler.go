package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler retrieves a client's order history from the database.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client order history queries.
// Requires a GORM database connection for query execution.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the query, returning the client's orders newest first.
// A client with no orders gets an empty slice, not an error.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]GetClientOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClientOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			status,
			created_at
		FROM orders
		WHERE client_id = ?
		ORDER BY created_at DESC
	`, query.ClientID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var clientOrder GetClientOrdersQueryResponse
		var id uuid.UUID
		var totalPrice string
		var status order.Status

		err = rows.Scan(
			&id,
			&totalPrice,
			&status,
			&clientOrder.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		clientOrder.ID = orderID

		total, moneyErr := kernel.NewMoneyFromString(totalPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		clientOrder.TotalPrice = total
		clientOrder.Status = status.String()

		orders = append(orders, clientOrder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
