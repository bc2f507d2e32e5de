package bonusrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/bonus"

	"gorm.io/gorm"
)

// GormBonusSettingsRepository implements BonusSettingsRepository using GORM.
type GormBonusSettingsRepository struct {
	db *gorm.DB
}

// NewGormBonusSettingsRepository creates a new GORM bonus settings repository.
func NewGormBonusSettingsRepository(db *gorm.DB) *GormBonusSettingsRepository {
	return &GormBonusSettingsRepository{db: db}
}

// GetActive retrieves the currently active bonus rule.
// Returns (nil, nil) when no rule is active; settlement then credits turnover
// without ever granting a bonus.
func (r *GormBonusSettingsRepository) GetActive(ctx context.Context) (*bonus.Settings, error) {
	var dto BonusSettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "is_active = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
