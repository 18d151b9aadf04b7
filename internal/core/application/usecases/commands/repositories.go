// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"transfers/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product catalog within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// WarehouseRepoFactory provides access to warehouse reference data within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// StockRepoFactory provides access to the stock ledger within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// OrderUoW manages transactions for order-only operations: sending,
	// preparing, closing, splitting, shipping, deleting.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCatalogUoW manages transactions for operations touching orders and
	// the product catalog, i.e. line accumulation with its description snapshot.
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderCatalogUoWFactory creates new order+catalog unit of work instances.
	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// OrderWarehouseUoW manages transactions for order creation, which
	// validates both warehouse endpoints.
	OrderWarehouseUoW interface {
		TxManager
		OrderRepoFactory
		WarehouseRepoFactory
	}

	// OrderWarehouseUoWFactory creates new order+warehouse unit of work instances.
	OrderWarehouseUoWFactory interface {
		Create() OrderWarehouseUoW
	}

	// StockUoW manages transactions for stock-ledger adjustments.
	StockUoW interface {
		TxManager
		ProductRepoFactory
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}
)
