// Package warehouse provides the Warehouse aggregate root for the fulfilment
// system. A warehouse is a logistics unit identified by its business unit
// code, living at a location and holding stock up to a fixed capacity.
//
// Key business rules:
//   - The business unit code is the stable external identifier; it survives
//     replacement of the physical warehouse record
//   - Capacity must be positive and stock must fit within capacity
//   - A warehouse is active while its archive timestamp is unset; archiving
//     is a one-way, idempotent transition that retains all other fields
//   - Archived warehouses never participate in location capacity or count
//     calculations
//
// The aggregate follows the construction discipline used across the domain
// layer: private fields, a validating NewWarehouse constructor for fresh
// records, and RestoreWarehouse for reconstruction from persistence.
package warehouse
