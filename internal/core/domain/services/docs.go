// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ItemsGrouper: distributes quote/order items over shipment groups by the
//     structural identity of each item's shipment
//   - MethodResolver: resolves availability, price and delivery time of a
//     shipping method through the registered providers, with a defined
//     fallback policy when no provider matches a selector
//   - AvailableMethodsBuilder: assembles the per-group list of offered methods
//   - OrderShipmentHydrator: rebuilds shipment groups on persisted orders and
//     backfills orders stored before item-level shipments existed
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
