package cmd

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/events"
	"dispatch/internal/adapters/out/photostore"
	"dispatch/internal/adapters/out/postgres/pgtest"
	rediscache "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

var seedNow = time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

func newTestRoot(t *testing.T) CompositionRoot {
	t.Helper()

	clock := kernel.FixedClock(seedNow)
	logger := zaptest.NewLogger(t)
	photos, err := photostore.NewLocalStore(t.TempDir(), "http://localhost/photos", clock, logger)
	require.NoError(t, err)

	return NewCompositionRoot(defaultConfig(), pgtest.OpenSQLite(t), Adapters{
		Photos:    photos,
		Publisher: events.NewNoopPublisher(logger),
		Cache:     rediscache.NopCache{},
		Clock:     clock,
	}, logger)
}

func TestSeed(t *testing.T) {
	ctx := t.Context()
	root := newTestRoot(t)

	require.NoError(t, root.Seed(ctx))
	require.NoError(t, root.Seed(ctx), "seeding twice is a no-op")

	products, err := root.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery())
	require.NoError(t, err)
	require.Len(t, products, 12)

	prices := make(map[string]string, len(products))
	for _, p := range products {
		prices[p.Name] = p.Price.String()
	}
	assert.Equal(t, "150", prices["Pachet servicii 1"])
	assert.Equal(t, "700", prices["Pachet servicii 12"])

	drivers, err := root.CreateListEmployeesQueryHandler().Handle(ctx, queries.NewListDriversQuery())
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, seedDriverEmail, drivers[0].Email)
	assert.Equal(t, seedDriverCounty, drivers[0].County)
	assert.Equal(t, []string{employee.RoleDriver}, drivers[0].Roles)

	byEmployee, err := queries.NewListRoutesByEmployeeQuery(drivers[0].ID)
	require.NoError(t, err)
	routes, err := root.CreateListRoutesQueryHandler().Handle(ctx, byEmployee)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "2024-06-03", routes[0].Date.Format(time.DateOnly))
	assert.Equal(t, seedDriverCounty, routes[0].County)
}

func TestSeed_KeepsExistingCatalog(t *testing.T) {
	ctx := t.Context()
	root := newTestRoot(t)

	create := root.CreateCreateProductCommandHandler()
	cmd := mustProductCommand(t)
	require.NoError(t, create.Handle(ctx, cmd))

	require.NoError(t, root.Seed(ctx))

	products, err := root.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestBuildAdapters_LocalFallbacks(t *testing.T) {
	cfg := defaultConfig()
	cfg.LocalPhotoDir = t.TempDir()

	adapters, release, err := BuildAdapters(t.Context(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, release)
	defer release()

	assert.IsType(t, &photostore.LocalStore{}, adapters.Photos)
	assert.IsType(t, events.NoopPublisher{}, adapters.Publisher)
	assert.IsType(t, rediscache.NopCache{}, adapters.Cache)
	assert.NotNil(t, adapters.Clock)
}

func TestBuildAdapters_UnreachableRedis(t *testing.T) {
	cfg := defaultConfig()
	cfg.LocalPhotoDir = t.TempDir()
	cfg.RedisURL = "not-a-redis-url"

	_, release, err := BuildAdapters(t.Context(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "catalog cache")
	assert.Nil(t, release)
}

func mustProductCommand(t *testing.T) commands.CreateProductCommand {
	t.Helper()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Toaleta VIP", "Cabina cu chiuveta", decimal.NewFromInt(420))
	require.NoError(t, err)
	return cmd
}
