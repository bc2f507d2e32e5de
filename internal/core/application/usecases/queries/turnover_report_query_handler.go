package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurnoverReportQueryHandler computes the turnover report from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type TurnoverReportQueryHandler struct {
	db *gorm.DB
}

// NewTurnoverReportQueryHandler creates a handler for turnover report queries.
// Requires a GORM database connection for query execution.
func NewTurnoverReportQueryHandler(db *gorm.DB) TurnoverReportQueryHandler {
	return TurnoverReportQueryHandler{db: db}
}

// Handle executes the turnover report.
// Selects delivered orders created within the inclusive date range and sums
// their totals. Malformed dates yield an empty report with a zero total
// rather than an error.
func (h TurnoverReportQueryHandler) Handle(
	ctx context.Context,
	query TurnoverReportQuery,
) (TurnoverReportResponse, error) {
	if err := query.Validate(); err != nil {
		return TurnoverReportResponse{}, err
	}

	report := TurnoverReportResponse{
		Orders: make([]TurnoverReportOrder, 0),
		Total:  kernel.ZeroMoney(),
	}

	start, end, ok := query.dateRange()
	if !ok {
		return report, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			total_price,
			created_at
		FROM orders
		WHERE status = ?
		  AND created_at >= ?
		  AND created_at < ?
		ORDER BY created_at
	`, order.Delivered, start, end.AddDate(0, 0, 1)).Rows()
	if err != nil {
		return TurnoverReportResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var reportOrder TurnoverReportOrder
		var id, clientID uuid.UUID
		var totalPrice string

		err = rows.Scan(
			&id,
			&clientID,
			&totalPrice,
			&reportOrder.CreatedAt,
		)
		if err != nil {
			return TurnoverReportResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return TurnoverReportResponse{}, idErr
		}
		reportOrder.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return TurnoverReportResponse{}, idErr
		}
		reportOrder.ClientID = ownerID

		total, moneyErr := kernel.NewMoneyFromString(totalPrice)
		if moneyErr != nil {
			return TurnoverReportResponse{}, moneyErr
		}
		reportOrder.TotalPrice = total

		report.Orders = append(report.Orders, reportOrder)
		report.Total = report.Total.Add(total)
	}

	if err = rows.Err(); err != nil {
		return TurnoverReportResponse{}, err
	}

	return report, nil
}
