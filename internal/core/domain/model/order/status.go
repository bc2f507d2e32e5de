package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──> Shipped ──> Delivered
//	   │
//	   └──────> Cancelled
//
// Delivered and Cancelled are terminal states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// Orders in this status are waiting for a courier to accept them.
	Pending

	// Shipped indicates a courier has accepted the order and is delivering it.
	Shipped

	// Delivered indicates the order reached the client. Terminal.
	// Entering this status is the sole trigger for bonus settlement.
	Delivered

	// Cancelled indicates the order was withdrawn before shipping. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending orders must not have a courier assigned
//   - Shipped and Delivered orders must have a courier assigned
//   - Cancelled orders may have either (cancellation does not unassign)
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Shipped || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Shipped.
//
// Valid transitions:
//   - Pending -> Shipped (a courier takes the order)
//
// Any other starting state returns a ConflictError.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be accepted",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Shipped, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered (order handed to the client)
//
// Completing a Pending order fails: it must be accepted first. Completing a
// Delivered order fails too, which is what keeps bonus settlement from ever
// running twice for one order.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be delivered",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Orders already with a courier cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be cancelled",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
