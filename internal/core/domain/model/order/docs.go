// Package order provides the Order aggregate and the Quote value object of
// the shipping domain.
//
// The package includes:
//   - Order: the aggregate root holding items, expenses and shipment groups
//     of a placed order, plus the legacy order-level shipment fields
//   - Quote: the pricing context of an unplaced cart (store, currency,
//     price mode, items) that method resolution runs against
//
// Key business rules:
//   - Orders must have a valid unique identifier and a valid price mode
//   - Items are distributed over shipment groups derived from each item's
//     shipment; groups replace the legacy single order-level shipment
//   - Expenses of type SHIPMENT_EXPENSE_TYPE price exactly one shipment each
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
