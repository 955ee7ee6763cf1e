// Package order provides domain entities and business logic for order management
// in the ordering system. It implements the Order aggregate root with lifecycle
// management, line-item ownership, and total computation.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - LineItem: A value object holding a product reference, quantity, and price snapshot
//   - Status: The set of order states and the cancellation guard between them
//
// Key business rules:
//   - Orders must have valid order, customer, and restaurant identifiers
//   - The order total always equals the sum of line-item subtotals
//   - Unit prices are snapshotted when an item is added and never change afterwards
//   - Delivered and Cancelled are terminal; delivered orders cannot be cancelled
//     and cancelled orders cannot be cancelled again
//   - Administrative status changes may assign any valid status, in any direction
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
