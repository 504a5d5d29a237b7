// Package shipment contains the domain model for partitioning order items
// into shipment groups and resolving shipping methods for them.
//
// The central concepts are:
//   - Shipment: a draft or persisted delivery leg, identified structurally by
//     (method, shipping address, requested delivery date) before persistence
//     and by a numeric id afterwards
//   - GroupHash: the derived identity of "one shipment", shared by all items
//     that travel together
//   - Group: the set of items sharing one GroupHash, plus the resolved
//     shipping methods available to it
//   - Method: an administrator-managed shipping method with pluggable
//     availability, price and delivery-time provider selectors
//   - Expense: a cost line on the order; shipping expenses reference the
//     shipment they price
//
// Group and AvailableMethod are ephemeral and recomputed per request.
// Shipment and Expense become durable once an order is saved.
package shipment
