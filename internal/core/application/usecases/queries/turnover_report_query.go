// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrTurnoverReportQueryIsNotConstructed = errors.New(
	"TurnoverReportQuery must be created via NewTurnoverReportQuery constructor",
)

// reportDateLayout is the calendar-date format accepted by report queries.
const reportDateLayout = "2006-01-02"

// TurnoverReportQuery retrieves delivered orders within an inclusive date
// range together with their total value.
//
// The date strings are kept raw on purpose: a malformed date degrades to an
// empty report instead of failing the request, so validation happens at
// handle time, not construction time.
type TurnoverReportQuery struct {
	startDate string
	endDate   string

	guard guard.ConstructorGuard
}

// NewTurnoverReportQuery creates a turnover report query for the given
// calendar date range (YYYY-MM-DD, both ends inclusive).
func NewTurnoverReportQuery(startDate, endDate string) TurnoverReportQuery {
	return TurnoverReportQuery{
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q TurnoverReportQuery) Validate() error {
	return q.guard.Validate(ErrTurnoverReportQueryIsNotConstructed)
}

// StartDate returns the raw start date string.
func (q TurnoverReportQuery) StartDate() string {
	return q.startDate
}

// EndDate returns the raw end date string.
func (q TurnoverReportQuery) EndDate() string {
	return q.endDate
}

// dateRange parses the raw dates. ok is false when either date is malformed
// or the range is inverted; the report then degrades to an empty result.
func (q TurnoverReportQuery) dateRange() (start, end time.Time, ok bool) {
	start, err := time.Parse(reportDateLayout, q.startDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(reportDateLayout, q.endDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// TurnoverReportOrder is one delivered order in the turnover report.
type TurnoverReportOrder struct {
	ID         kernel.UUID
	ClientID   kernel.UUID
	TotalPrice kernel.Money
	CreatedAt  time.Time
}

// TurnoverReportResponse is the turnover report read model: the matching
// delivered orders plus the scalar total over them.
type TurnoverReportResponse struct {
	Orders []TurnoverReportOrder
	Total  kernel.Money
}
