// Package services contains domain services that implement business logic
// spanning multiple aggregates.
//
// BonusSettlement coordinates the order and courier aggregates when an order
// is delivered: it credits the order total to the courier's turnover and
// grants a bonus when the active threshold from bonus settings is reached.
// The service is pure domain logic; transaction boundaries and row locking
// are the caller's responsibility.
package services
