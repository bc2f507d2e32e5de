// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The turnover and bonus balances are exact decimals; settlement rewrites them
// under a row lock.
type CourierDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	VehicleType   string          `gorm:"type:varchar(64);not null"`
	TotalTurnover decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalBonuses  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		VehicleType:   aggregate.VehicleType(),
		TotalTurnover: aggregate.TotalTurnover().Decimal(),
		TotalBonuses:  aggregate.TotalBonuses().Decimal(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate with its persisted balances using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	totalTurnover, err := kernel.NewMoney(dto.TotalTurnover)
	if err != nil {
		return nil, err
	}

	totalBonuses, err := kernel.NewMoney(dto.TotalBonuses)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.VehicleType, totalTurnover, totalBonuses)
}
