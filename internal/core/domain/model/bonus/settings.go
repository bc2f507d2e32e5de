// Package bonus provides the administrator-managed settings that govern
// delivery-bonus settlement. The core reads these settings but never creates
// or modifies them.
package bonus

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

// ErrSettingsIsNotConstructed is returned when using improperly initialized Settings.
var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// Settings holds one bonus rule: when a courier's total turnover reaches
// MinTurnover, BonusAmount is paid out. At most one Settings row is active at
// a time; settlement consults the active row only. When no row is active, no
// bonus is ever granted.
type Settings struct {
	id          kernel.UUID
	minTurnover kernel.Money
	bonusAmount kernel.Money
	isActive    bool

	guard guard.ConstructorGuard
}

// NewSettings creates a bonus rule.
//
// Parameters:
//   - id: Unique identifier for the settings row
//   - minTurnover: Turnover threshold that triggers the payout
//   - bonusAmount: Amount paid when the threshold is reached
//   - isActive: Whether this rule currently governs settlement
func NewSettings(id kernel.UUID, minTurnover, bonusAmount kernel.Money, isActive bool) (*Settings, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Settings{
		id:          id,
		minTurnover: minTurnover,
		bonusAmount: bonusAmount,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Settings instance was properly constructed.
func (s *Settings) Validate() error {
	if s == nil {
		return ErrSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrSettingsIsNotConstructed)
}

// ID returns the settings row identifier.
func (s *Settings) ID() kernel.UUID {
	return s.id
}

// MinTurnover returns the turnover threshold for the payout.
func (s *Settings) MinTurnover() kernel.Money {
	return s.minTurnover
}

// BonusAmount returns the payout amount.
func (s *Settings) BonusAmount() kernel.Money {
	return s.bonusAmount
}

// IsActive reports whether this rule currently governs settlement.
func (s *Settings) IsActive() bool {
	return s.isActive
}
