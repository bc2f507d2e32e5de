package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EarningsReportQueryHandler computes a courier's earnings from the database.
type EarningsReportQueryHandler struct {
	db *gorm.DB
}

// NewEarningsReportQueryHandler creates a handler for earnings report queries.
// Requires a GORM database connection for query execution.
func NewEarningsReportQueryHandler(db *gorm.DB) EarningsReportQueryHandler {
	return EarningsReportQueryHandler{db: db}
}

// Handle executes the earnings report.
// Fails with an object-not-found error when the courier does not exist.
// Returns the courier's delivered orders; the reported earnings are half
// their summed totals.
func (h EarningsReportQueryHandler) Handle(
	ctx context.Context,
	query EarningsReportQuery,
) (EarningsReportResponse, error) {
	if err := query.Validate(); err != nil {
		return EarningsReportResponse{}, err
	}

	var courierName string
	err := h.db.WithContext(ctx).Raw(`
		SELECT name FROM couriers WHERE id = ?
	`, query.CourierID().String()).Row().Scan(&courierName)
	if errors.Is(err, sql.ErrNoRows) {
		return EarningsReportResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID())
	}
	if err != nil {
		return EarningsReportResponse{}, errs.NewObjectNotFoundErrorWithCause("courier", query.CourierID(), err)
	}

	report := EarningsReportResponse{
		CourierID:      query.CourierID(),
		CourierName:    courierName,
		Orders:         make([]EarningsReportOrder, 0),
		DeliveredTotal: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			created_at
		FROM orders
		WHERE status = ? AND courier_id = ?
		ORDER BY created_at
	`, order.Delivered, query.CourierID().String()).Rows()
	if err != nil {
		return EarningsReportResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var reportOrder EarningsReportOrder
		var id uuid.UUID
		var totalPrice string

		err = rows.Scan(&id, &totalPrice, &reportOrder.CreatedAt)
		if err != nil {
			return EarningsReportResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return EarningsReportResponse{}, idErr
		}
		reportOrder.ID = orderID

		total, moneyErr := kernel.NewMoneyFromString(totalPrice)
		if moneyErr != nil {
			return EarningsReportResponse{}, moneyErr
		}
		reportOrder.TotalPrice = total

		report.Orders = append(report.Orders, reportOrder)
		report.DeliveredTotal = report.DeliveredTotal.Add(total)
	}

	if err = rows.Err(); err != nil {
		return EarningsReportResponse{}, err
	}

	report.Earnings = report.DeliveredTotal.Half()

	return report, nil
}
