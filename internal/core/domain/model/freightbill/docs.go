// Package freightbill implements the freight-bill aggregate: one consolidated
// customer invoice built from a chosen set of that customer's delivered,
// unbilled consignments.
//
// A bill's line items and total are snapshots fixed at creation time. The bill
// then moves along Draft -> Generated -> Sent -> PartiallyPaid -> Paid, with
// Cancelled reachable from every pre-Paid status, driven by the transition
// table in status.go. Adjustments (discounts, surcharges) are stored as
// non-negative magnitudes with the sign implied by their type, and the payable
// FinalAmount is always derived, floored at zero.
package freightbill
