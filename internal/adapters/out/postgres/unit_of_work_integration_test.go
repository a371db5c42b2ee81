package postgres_test

import (
	"sync"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/adapters/out/postgres/taskrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type taskUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f taskUoWFactory) Create() commands.TaskUoW {
	return f.factory.Create()
}

// TestCreateTaskFromOrder_ConcurrentDispatchCreatesOneTask races several
// dispatches of the same order against a real PostgreSQL server. Exactly
// one must win; every other attempt reports ObjectAlreadyExists.
func TestCreateTaskFromOrder_ConcurrentDispatchCreatesOneTask(t *testing.T) {
	db := pgtest.StartPostgres(t)
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(db, nil, zap.NewNop())

	c, err := client.NewCompany(kernel.NewUUID(), client.Contact{Phone: "0257000000", Address: "Arad"},
		client.CompanyDetails{LegalName: "Acme SRL"})
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), 1, time.Now(), c.ID(), nil, nil, "amplasare", order.Details{})
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), time.Now(), kernel.NewUUID(), "Arad")
	require.NoError(t, err)

	setup := factory.Create()
	require.NoError(t, setup.Begin(ctx))
	require.NoError(t, setup.ClientRepository().Add(ctx, c))
	require.NoError(t, setup.OrderRepository().Add(ctx, o))
	require.NoError(t, setup.RouteRepository().Add(ctx, r))
	require.NoError(t, setup.Commit(ctx))

	handler := commands.NewCreateTaskFromOrderCommandHandler(
		taskUoWFactory{factory: factory},
		services.NewTaskDispatcher(kernel.SystemClock{}),
	)

	const attempts = 8
	results := make(chan error, attempts)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), o.ID(), r.ID())
			if cmdErr != nil {
				results <- cmdErr
				return
			}
			<-start
			results <- handler.Handle(ctx, cmd)
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)

	var rows int64
	require.NoError(t, db.Model(&taskrepo.TaskDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
