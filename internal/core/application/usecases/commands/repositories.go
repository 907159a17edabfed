// Package commands contains the lifecycle engine: the business operations
// that move production orders through their stages. Every command follows the
// same pattern (validate, begin a unit of work, apply domain transitions,
// commit), so a rejected command leaves the order store and the stage slots
// exactly as they were.
package commands

import (
	"context"

	"production/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest combination they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SlotRepoFactory provides the slot repository within a transaction.
	SlotRepoFactory interface {
		SlotRepository() ports.SlotRepository
	}

	// PackageRepoFactory provides the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW manages transactions that touch an order and its stage
	// slot together. Admission and completion run here so the slot change and
	// the status change apply atomically.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		SlotRepoFactory
	}

	// LifecycleUoWFactory creates lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// PackageUoW manages transactions for package operations, which also read
	// the owning order.
	PackageUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
	}

	// PackageUoWFactory creates package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}
)
