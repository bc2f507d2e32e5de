// Package bonusrepo provides read access to the administrator-managed bonus
// settings rows. The core only ever reads the single active row; writes happen
// out of band through administrative tooling.
package bonusrepo

import (
	"foodorder/internal/core/domain/model/bonus"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BonusSettingsDTO represents the database structure for bonus settings rows.
type BonusSettingsDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MinTurnover decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BonusAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive    bool            `gorm:"index"`
}

// TableName specifies the database table name for bonus settings entities.
func (BonusSettingsDTO) TableName() string {
	return "bonus_settings"
}

// toDomain converts a database DTO to a bonus settings domain object.
func toDomain(dto BonusSettingsDTO) (*bonus.Settings, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	minTurnover, err := kernel.NewMoney(dto.MinTurnover)
	if err != nil {
		return nil, err
	}

	bonusAmount, err := kernel.NewMoney(dto.BonusAmount)
	if err != nil {
		return nil, err
	}

	return bonus.NewSettings(id, minTurnover, bonusAmount, dto.IsActive)
}
