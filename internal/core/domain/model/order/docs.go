// Package order provides domain entities and business logic for the order
// lifecycle in the food-ordering system. It implements the Order aggregate
// root with its items, status state machine and courier assignment rules.
//
// The package includes:
//   - Order: The aggregate root that manages identity, items, totals and lifecycle
//   - Item: An immutable order line with a product snapshot frozen at checkout
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, client, delivery address, phone
//     number and at least one item
//   - The order total always equals the sum of the item line prices
//   - Status follows pending -> shipped -> delivered, with pending -> cancelled
//     as the only branch; delivered and cancelled are terminal
//   - A courier is recorded exactly when the order is accepted, and only that
//     courier may mark the order delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
