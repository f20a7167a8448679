// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so tests only have to mock what the handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ConsignmentRepoFactory provides access to the consignment repository within a transaction.
	ConsignmentRepoFactory interface {
		ConsignmentRepository() ports.ConsignmentRepository
	}

	// FreightBillRepoFactory provides access to the freight-bill repository within a transaction.
	FreightBillRepoFactory interface {
		FreightBillRepository() ports.FreightBillRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ConsignmentUoW manages transactions for consignment-only operations:
	// booking, scheduling, transit updates, and edits.
	ConsignmentUoW interface {
		TxManager
		ConsignmentRepoFactory
	}

	// ConsignmentUoWFactory creates new consignment unit of work instances.
	ConsignmentUoWFactory interface {
		Create() ConsignmentUoW
	}

	// AssignmentUoW manages transactions spanning a consignment and the fleet.
	// Used by vehicle assignment, delivery confirmation, cancellation, and
	// deletion, which must flip vehicle and driver status in the same
	// transaction as the consignment transition.
	AssignmentUoW interface {
		TxManager
		ConsignmentRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// BillingUoW manages transactions spanning freight bills, their
	// consolidated consignments, and the billed customer. Bill creation
	// marks every consignment Billed in the same transaction that persists
	// the bill, so a failed persist leaves nothing marked.
	BillingUoW interface {
		TxManager
		FreightBillRepoFactory
		ConsignmentRepoFactory
		CustomerRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// FleetUoW manages transactions for fleet registration operations.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
