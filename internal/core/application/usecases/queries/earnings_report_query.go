package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrEarningsReportQueryIsNotConstructed = errors.New(
	"EarningsReportQuery must be created via NewEarningsReportQuery constructor",
)

// EarningsReportQuery retrieves a courier's earnings figure.
//
// Earnings are defined as half the summed totals of the courier's delivered
// orders. The halving is the historical payout rule; nobody has produced a
// written rationale for it, so it is reproduced as-is.
type EarningsReportQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEarningsReportQuery creates an earnings report query for one courier.
func NewEarningsReportQuery(courierID kernel.UUID) (EarningsReportQuery, error) {
	if err := courierID.Validate(); err != nil {
		return EarningsReportQuery{}, err
	}

	return EarningsReportQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q EarningsReportQuery) Validate() error {
	return q.guard.Validate(ErrEarningsReportQueryIsNotConstructed)
}

// CourierID returns the courier the report is about.
func (q EarningsReportQuery) CourierID() kernel.UUID {
	return q.courierID
}

// EarningsReportOrder is one delivered order in the earnings report.
type EarningsReportOrder struct {
	ID         kernel.UUID
	TotalPrice kernel.Money
	CreatedAt  time.Time
}

// EarningsReportResponse is the earnings report read model: the courier's
// delivered orders plus the totals derived from them.
type EarningsReportResponse struct {
	CourierID      kernel.UUID
	CourierName    string
	Orders         []EarningsReportOrder
	DeliveredTotal kernel.Money
	Earnings       kernel.Money
}
