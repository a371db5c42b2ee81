package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/client"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 14, 8, 30, 0, 0, time.UTC)

func newTestOrder(t *testing.T, clientID kernel.UUID, orderType string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), 1001, fixedNow, clientID, nil, nil, orderType, order.Details{
		Quantity: 2,
		Location: "46.1866,21.3123",
		Notes:    "Cheia la paznic",
	})
	require.NoError(t, err)
	return o
}

func newTestRoute(t *testing.T, tasks ...*task.Task) *route.Route {
	t.Helper()
	id := kernel.NewUUID()
	if len(tasks) > 0 {
		id = tasks[0].RouteID()
	}
	r, err := route.RestoreRoute(id, fixedNow, kernel.NewUUID(), "Arad", tasks)
	require.NoError(t, err)
	return r
}

func newTestCompany(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewCompany(kernel.NewUUID(),
		client.Contact{Phone: "0257000000", Address: "Calea Aurel Vlaicu 10, Arad"},
		client.CompanyDetails{LegalName: "Acme SRL", RegistrationID: "RO123"})
	require.NoError(t, err)
	return c
}

func newTestIndividual(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewIndividual(kernel.NewUUID(),
		client.Contact{Phone: "0721000001"},
		client.IndividualDetails{FullName: "Ion Popescu", NationalID: "1800101020011"})
	require.NoError(t, err)
	return c
}

func newTestTask(t *testing.T, status task.Status, photos ...*task.Photo) *task.Task {
	t.Helper()
	tk, err := task.RestoreTask(kernel.NewUUID(), kernel.NewUUID(), nil, task.Placement, fixedNow, status,
		task.Details{ClientName: "Acme SRL", Address: "Arad"}, photos)
	require.NoError(t, err)
	return tk
}

func newTestPhoto(t *testing.T, url string) *task.Photo {
	t.Helper()
	p, err := task.NewPhoto(kernel.NewUUID(), url, "")
	require.NoError(t, err)
	return p
}

func newTestEmployee(t *testing.T, county string, roles ...*employee.Role) *employee.Employee {
	t.Helper()
	pw, err := employee.NewPassword("s3cret")
	require.NoError(t, err)
	e, err := employee.NewEmployee(kernel.NewUUID(), "sofer_arad@example.ro", pw, "Ion Popescu (Arad)",
		"0721000001", county, roles)
	require.NoError(t, err)
	return e
}
