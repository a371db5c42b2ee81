package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateRouteCommandHandler_Handle_DefaultsCountyFromEmployee(t *testing.T) {
	ctx := t.Context()
	driverRole, err := employee.NewRole(kernel.NewUUID(), employee.RoleDriver)
	require.NoError(t, err)
	e := newTestEmployee(t, "Arad", driverRole)
	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, fixedNow, e.ID(), "")
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	var added *route.Route
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", ctx, e.ID()).Return(e, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*route.Route) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateRouteCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(routeID))
	assert.Equal(t, "Arad", added.County())
	assert.True(t, added.EmployeeID().IsEqual(e.ID()))
	assert.Empty(t, added.Tasks())
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_UnknownEmployee(t *testing.T) {
	ctx := t.Context()
	employeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(kernel.NewUUID(), fixedNow, employeeID, "Timis")
	require.NoError(t, err)

	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EmployeeRepository").Return(employeeRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	employeeRepo.On("Get", ctx, employeeID).Return(nil, errs.NewObjectNotFoundError("employee", employeeID)).Once()

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateRouteCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "RouteRepository")
}

func TestNewCreateRouteCommand_RequiresDate(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), time.Time{}, kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAssignDriverCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	r := newTestRoute(t)
	e := newTestEmployee(t, "Bihor")
	cmd, err := commands.NewAssignDriverCommand(r.ID(), e.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", ctx, e.ID()).Return(e, nil).Once(),
		routeRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, r.EmployeeID().IsEqual(e.ID()))
	assert.Equal(t, "Arad", r.County(), "the route keeps its county")
	uow.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_SameDriverIsNoOp(t *testing.T) {
	ctx := t.Context()
	e := newTestEmployee(t, "Arad")
	r, err := route.NewRoute(kernel.NewUUID(), fixedNow, e.ID(), "Arad")
	require.NoError(t, err)
	cmd, err := commands.NewAssignDriverCommand(r.ID(), e.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("EmployeeRepository").Return(employeeRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	employeeRepo.On("Get", ctx, e.ID()).Return(e, nil).Once()

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignDriverCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteRouteCommandHandler_Handle_CascadesAndCleansUpPhotos(t *testing.T) {
	ctx := t.Context()
	routeID := kernel.NewUUID()
	first, err := task.RestoreTask(kernel.NewUUID(), routeID, nil, task.Pickup, fixedNow, task.Completed,
		task.Details{ClientName: "Acme SRL"}, []*task.Photo{newTestPhoto(t, "https://example.com/1.jpg")})
	require.NoError(t, err)
	second, err := task.RestoreTask(kernel.NewUUID(), routeID, nil, task.Placement, fixedNow, task.New,
		task.Details{ClientName: "Ion Popescu"}, []*task.Photo{
			newTestPhoto(t, "https://example.com/2.jpg"),
			newTestPhoto(t, "https://example.com/3.jpg"),
		})
	require.NoError(t, err)
	r := newTestRoute(t, first, second)
	cmd, err := commands.NewDeleteRouteCommand(r.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	store := new(MockPhotoStore)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		routeRepo.On("Delete", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		store.On("Delete", ctx, "https://example.com/1.jpg").Return(true, nil).Once(),
		store.On("Delete", ctx, "https://example.com/2.jpg").Return(false, nil).Once(),
		store.On("Delete", ctx, "https://example.com/3.jpg").Return(false, errors.New("timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRouteCommandHandler(factory, store, kernel.FixedClock(fixedNow), zap.NewNop())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	for _, tk := range []*task.Task{first, second} {
		events := tk.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, task.EventDeleted, events[0].Type)
	}
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteRouteCommandHandler_Handle_DeleteErrorSkipsStore(t *testing.T) {
	ctx := t.Context()
	tk := newTestTask(t, task.New, newTestPhoto(t, "https://example.com/1.jpg"))
	r := newTestRoute(t, tk)
	cmd, err := commands.NewDeleteRouteCommand(r.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	store := new(MockPhotoStore)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	routeRepo.On("Delete", ctx, r).Return(errors.New("fk violation")).Once()

	factory := new(MockFactory[commands.RouteUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRouteCommandHandler(factory, store, kernel.FixedClock(fixedNow), zap.NewNop())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
