package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	seedDriverEmail  = "sofer_arad@dispatch.ro"
	seedDriverCounty = "Arad"
)

// Seed loads the bootstrap data: the service packets when the catalog is
// empty, the DRIVER, SALES and TECH roles, and a test driver for Arad with
// a route for today. Running it again changes nothing.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	logger := c.logger.Named("seed")

	if err := c.seedProducts(ctx, logger); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	ensureRole := c.CreateEnsureRoleCommandHandler()
	for _, name := range []string{employee.RoleDriver, employee.RoleSales, employee.RoleTech} {
		cmd, err := commands.NewEnsureRoleCommand(name)
		if err != nil {
			return err
		}
		if _, err = ensureRole.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}

	if err := c.seedDriver(ctx, logger); err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}
	return nil
}

func (c *CompositionRoot) seedProducts(ctx context.Context, logger *zap.Logger) error {
	products, err := c.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery())
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	create := c.CreateCreateProductCommandHandler()
	for i := 1; i <= 12; i++ {
		cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(),
			fmt.Sprintf("Pachet servicii %d", i),
			fmt.Sprintf("Description for packet %d", i),
			decimal.NewFromInt(int64(i*50+100)),
		)
		if err != nil {
			return err
		}
		if err = create.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	logger.Info("loaded service packets", zap.Int("count", 12))
	return nil
}

func (c *CompositionRoot) seedDriver(ctx context.Context, logger *zap.Logger) error {
	employees, err := c.CreateListEmployeesQueryHandler().Handle(ctx, queries.NewListEmployeesQuery())
	if err != nil {
		return err
	}
	for _, e := range employees {
		if strings.EqualFold(e.Email, seedDriverEmail) {
			return nil
		}
	}

	driverID := kernel.NewUUID()
	register, err := commands.NewRegisterEmployeeCommand(driverID, seedDriverEmail, "password123",
		"Ion Popescu (Arad)", "0721000001", seedDriverCounty, []string{employee.RoleDriver})
	if err != nil {
		return err
	}
	if err = c.CreateRegisterEmployeeCommandHandler().Handle(ctx, register); err != nil {
		return err
	}

	today := c.adapters.Clock.Now().UTC()
	route, err := commands.NewCreateRouteCommand(kernel.NewUUID(),
		time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		driverID, seedDriverCounty)
	if err != nil {
		return err
	}
	if err = c.CreateCreateRouteCommandHandler().Handle(ctx, route); err != nil {
		return err
	}

	logger.Info("created test driver and route", zap.String("county", seedDriverCounty))
	return nil
}
