// Package courier provides the delivery-person aggregate for the
// food-ordering system.
//
// The Courier aggregate holds courier identity plus the two running balances
// mutated by bonus settlement: total turnover (the cumulative value of
// delivered orders plus granted bonuses) and total bonuses. Both balances are
// monotonically non-decreasing and are only mutated by the settlement service
// while holding a row-level lock on the courier record.
package courier
