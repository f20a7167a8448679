// Package consignment implements the consignment aggregate and its lifecycle
// state machine.
//
// A consignment is one shipment booking. It moves along
// Booked -> Assigned -> Scheduled -> InTransit -> DeliveredUnconfirmed -> Delivered,
// with Cancelled reachable from every non-terminal status. All transitions are
// driven through aggregate methods backed by a single transition table; mutating
// a terminal consignment is impossible through the public API.
//
// The package also holds the booking-time value objects (Party, Route, Weights,
// Charges, Assignment). They are denormalized snapshots: a consignment never
// reads back from the live customer, vehicle, or driver records it was created
// from.
package consignment
