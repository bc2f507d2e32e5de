package courier

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleTypeIsRequired is returned when attempting to create a courier without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicle type")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery person in the system.
// It is an aggregate root that manages courier identity and the running
// turnover and bonus balances mutated by bonus settlement.
//
// Key responsibilities:
//   - Managing courier identity (ID, name, vehicle type)
//   - Accumulating turnover as orders are delivered
//   - Accumulating bonuses granted when turnover thresholds are crossed
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and non-empty vehicle type
//   - Total turnover and total bonuses are monotonically non-decreasing;
//     there is no operation that lowers either balance
//   - Both balances are mutated only through AddTurnover and GrantBonus,
//     which the bonus settlement service invokes under a row-level lock
//
// Example usage:
//
//	c, err := NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier starts with zero turnover and zero bonuses
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// vehicleType describes the courier's transport (bicycle, scooter, car)
	vehicleType string
	// totalTurnover is the cumulative value of delivered orders plus granted bonuses
	totalTurnover kernel.Money
	// totalBonuses is the cumulative value of granted bonuses
	totalBonuses kernel.Money
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with zero turnover and zero bonuses.
// This is the only way to create a valid Courier instance.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - vehicleType: Transport description (must be non-empty)
func NewCourier(id kernel.UUID, name string, vehicleType string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including the accumulated turnover and bonus balances.
func RestoreCourier(
	id kernel.UUID,
	name string,
	vehicleType string,
	totalTurnover kernel.Money,
	totalBonuses kernel.Money,
) (*Courier, error) {
	courier, err := NewCourier(id, name, vehicleType)
	if err != nil {
		return nil, err
	}

	courier.totalTurnover = totalTurnover
	courier.totalBonuses = totalBonuses
	return courier, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// VehicleType returns the courier's transport description.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// TotalTurnover returns the cumulative delivered-order value plus granted bonuses.
func (c *Courier) TotalTurnover() kernel.Money {
	return c.totalTurnover
}

// TotalBonuses returns the cumulative value of granted bonuses.
func (c *Courier) TotalBonuses() kernel.Money {
	return c.totalBonuses
}

// AddTurnover credits a delivered order's total to the courier's turnover.
// Turnover only ever grows; settlement invokes this exactly once per
// delivered order.
func (c *Courier) AddTurnover(amount kernel.Money) {
	c.totalTurnover = c.totalTurnover.Add(amount)
}

// GrantBonus credits a bonus payout. The bonus counts toward both the
// turnover and the bonus balance, mirroring how payouts are tracked in
// the settlement books.
func (c *Courier) GrantBonus(amount kernel.Money) {
	c.totalTurnover = c.totalTurnover.Add(amount)
	c.totalBonuses = c.totalBonuses.Add(amount)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}
