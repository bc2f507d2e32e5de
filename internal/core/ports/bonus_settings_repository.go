package ports

import (
	"context"

	"foodorder/internal/core/domain/model/bonus"
)

// BonusSettingsRepository reads the administrator-managed bonus rules.
// The core never writes settings; rows are maintained out of band.
type BonusSettingsRepository interface {
	// GetActive returns the currently active bonus rule, or (nil, nil) when
	// no rule is active. Settlement treats a nil rule as "no bonus ever".
	GetActive(ctx context.Context) (*bonus.Settings, error)
}
