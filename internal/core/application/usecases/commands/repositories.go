// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RouteDefinitionRepoFactory interface {
		RouteDefinitionRepository() ports.RouteDefinitionRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// ClientUoW manages transactions for client registry operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// CatalogUoW manages transactions for catalog operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for the order ledger. Orders reference
	// clients, products and route definitions, and deleting an order
	// detaches its task.
	OrderUoW interface {
		TxManager
		ClientRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		RouteDefinitionRepoFactory
		TaskRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW manages transactions for the route planner.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		EmployeeRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// TaskUoW manages transactions for the task dispatcher, which reads
	// orders, clients and routes while writing tasks.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   r, err := uow.RouteRepository().Get(ctx, routeID)
	//   // ... dispatch
	//   err = uow.TaskRepository().Add(ctx, t)
	//
	//   err = uow.Commit(ctx)
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
		ClientRepoFactory
		RouteRepoFactory
	}

	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// EmployeeUoW manages transactions for the employee directory.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		RoleRepoFactory
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}
)
