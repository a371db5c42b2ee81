package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/adapters/out/postgres/clientrepo"
	"dispatch/internal/adapters/out/postgres/employeerepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/adapters/out/postgres/taskrepo"
	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// store seeds an in-memory database through the repositories.
type store struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
}

func newStore(t *testing.T) *store {
	return &store{t: t, ctx: t.Context(), db: pgtest.OpenSQLite(t)}
}

func (s *store) company(name string) *client.Client {
	c, err := client.NewCompany(kernel.NewUUID(),
		client.Contact{Email: "office@example.ro", Phone: "0257000000", Address: "Arad"},
		client.CompanyDetails{LegalName: name, RegistrationID: "RO1"})
	require.NoError(s.t, err)
	require.NoError(s.t, clientrepo.NewGormClientRepository(s.db, noopTracker{}).Add(s.ctx, c))
	return c
}

func (s *store) individual(name string) *client.Client {
	c, err := client.NewIndividual(kernel.NewUUID(),
		client.Contact{Phone: "0721000001"},
		client.IndividualDetails{FullName: name, NationalID: "1800101020031"})
	require.NoError(s.t, err)
	require.NoError(s.t, clientrepo.NewGormClientRepository(s.db, noopTracker{}).Add(s.ctx, c))
	return c
}

func (s *store) product(name string, price string) *catalog.Product {
	p, err := catalog.NewProduct(kernel.NewUUID(), name, "", decimal.RequireFromString(price))
	require.NoError(s.t, err)
	require.NoError(s.t, catalogrepo.NewGormProductRepository(s.db, noopTracker{}).Add(s.ctx, p))
	return p
}

func (s *store) definition(name, city string) *order.RouteDefinition {
	d, err := order.NewRouteDefinition(kernel.NewUUID(), name, city)
	require.NoError(s.t, err)
	require.NoError(s.t, orderrepo.NewGormRouteDefinitionRepository(s.db).Add(s.ctx, d))
	return d
}

func (s *store) order(number int64, clientID kernel.UUID, definitionID *kernel.UUID) *order.Order {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), number, time.Date(2024, 5, 14, 8, 30, 0, 0, time.UTC),
		clientID, nil, definitionID, "amplasare",
		order.Details{Quantity: 2, StartDate: &start, Location: "46.1866,21.3123", Notes: "Cheia la paznic"})
	require.NoError(s.t, err)
	require.NoError(s.t, orderrepo.NewGormOrderRepository(s.db, noopTracker{}).Add(s.ctx, o))
	return o
}

func (s *store) role(name string) *employee.Role {
	r, err := employee.NewRole(kernel.NewUUID(), name)
	require.NoError(s.t, err)
	require.NoError(s.t, employeerepo.NewGormRoleRepository(s.db).Add(s.ctx, r))
	return r
}

func (s *store) employee(email, name, county string, roles ...*employee.Role) *employee.Employee {
	pw, err := employee.NewPassword("s3cret")
	require.NoError(s.t, err)
	e, err := employee.NewEmployee(kernel.NewUUID(), email, pw, name, "0721000001", county, roles)
	require.NoError(s.t, err)
	require.NoError(s.t, employeerepo.NewGormEmployeeRepository(s.db, noopTracker{}).Add(s.ctx, e))
	return e
}

func (s *store) route(date time.Time, employeeID kernel.UUID, county string) *route.Route {
	r, err := route.NewRoute(kernel.NewUUID(), date, employeeID, county)
	require.NoError(s.t, err)
	require.NoError(s.t, routerepo.NewGormRouteRepository(s.db, noopTracker{}).Add(s.ctx, r))
	return r
}

func (s *store) task(routeID kernel.UUID, orderID *kernel.UUID, address string, photoURLs ...string) *task.Task {
	t, err := task.NewTask(kernel.NewUUID(), routeID, orderID, task.Placement,
		time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC), task.Details{Address: address, ClientName: "Acme SRL"})
	require.NoError(s.t, err)
	for _, url := range photoURLs {
		p, photoErr := task.NewPhoto(kernel.NewUUID(), url, "")
		require.NoError(s.t, photoErr)
		require.NoError(s.t, t.AddPhoto(p))
	}
	require.NoError(s.t, taskrepo.NewGormTaskRepository(s.db, noopTracker{}).Add(s.ctx, t))
	return t
}

// MockCache is a mock implementation of ports.Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}
