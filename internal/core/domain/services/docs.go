// Package services provides domain services that evaluate business rules
// spanning multiple aggregates in the fulfilment system.
//
// The package includes:
//   - AssignmentPolicy: the fan-out rules governing how stores, products, and
//     warehouses may be mutually assigned
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root. They are pure: they operate on aggregates handed to them
// by the application layer and never touch persistence themselves.
package services
