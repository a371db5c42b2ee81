package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/task"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(factory *MockFactory[commands.TaskUoW]) commands.CreateTaskFromOrderCommandHandler {
	return commands.NewCreateTaskFromOrderCommandHandler(factory, services.NewTaskDispatcher(kernel.FixedClock(fixedNow)))
}

func TestCreateTaskFromOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := newTestCompany(t)
	o := newTestOrder(t, c.ID(), "igienizare")
	r := newTestRoute(t)
	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskFromOrderCommand(taskID, o.ID(), r.ID())
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	var added *task.Task
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*task.Task) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFactory[commands.TaskUoW])
	factory.On("Create").Return(uow).Once()

	err = newDispatchHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(taskID))
	assert.True(t, added.RouteID().IsEqual(r.ID()))
	require.NotNil(t, added.OrderID())
	assert.True(t, added.OrderID().IsEqual(o.ID()))
	assert.Equal(t, task.Sanitization, added.Type())
	assert.Equal(t, task.New, added.Status())
	assert.Equal(t, fixedNow, added.ScheduledTime())
	assert.Equal(t, "Acme SRL", added.Details().ClientName)
	assert.Equal(t, "0257000000", added.Details().ClientPhone)
	assert.Equal(t, "Calea Aurel Vlaicu 10, Arad", added.Details().Address)
	assert.Equal(t, "Cheia la paznic", added.Details().InternalNotes)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTaskFromOrderCommandHandler_Handle_MissingClient(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, kernel.NewUUID(), "")
	r := newTestRoute(t)
	cmd, err := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), o.ID(), r.ID())
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	var added *task.Task
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	taskRepo.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	clientRepo.On("Get", ctx, o.ClientID()).Return(nil, errs.NewObjectNotFoundError("client", o.ClientID())).Once()
	taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*task.Task) }).
		Return(nil).Once()

	factory := new(MockFactory[commands.TaskUoW])
	factory.On("Create").Return(uow).Once()

	err = newDispatchHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, services.UnknownClientName, added.Details().ClientName)
	assert.Equal(t, "46.1866,21.3123", added.Details().Address)
	assert.Empty(t, added.Details().ClientPhone)
	assert.Equal(t, task.Placement, added.Type())
	uow.AssertExpectations(t)
}

func TestCreateTaskFromOrderCommandHandler_Handle_DuplicateTask(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), orderID, kernel.NewUUID())
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("ExistsForOrder", ctx, orderID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFactory[commands.TaskUoW])
	factory.On("Create").Return(uow).Once()

	err = newDispatchHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestCreateTaskFromOrderCommandHandler_Handle_UniqueViolationOnInsert(t *testing.T) {
	ctx := t.Context()
	c := newTestIndividual(t)
	o := newTestOrder(t, c.ID(), "ridicare")
	r := newTestRoute(t)
	cmd, err := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), o.ID(), r.ID())
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	taskRepo.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).
		Return(errs.NewObjectAlreadyExistsError("task for order", o.ID().String())).Once()

	factory := new(MockFactory[commands.TaskUoW])
	factory.On("Create").Return(uow).Once()

	err = newDispatchHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateTaskFromOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, kernel.NewUUID(), "amplasare")
	routeID := kernel.NewUUID()

	tests := []struct {
		name      string
		orderErr  error
		routeErr  error
		wantParam string
	}{
		{name: "order", orderErr: errs.NewObjectNotFoundError("order", o.ID()), wantParam: "order"},
		{name: "route", routeErr: errs.NewObjectNotFoundError("route", routeID), wantParam: "route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), o.ID(), routeID)
			require.NoError(t, err)

			taskRepo := new(MockTaskRepository)
			orderRepo := new(MockOrderRepository)
			routeRepo := new(MockRouteRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("TaskRepository").Return(taskRepo).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			uow.On("RouteRepository").Return(routeRepo).Maybe()
			uow.On("Rollback", ctx).Return(nil).Once()
			taskRepo.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once()
			if tt.orderErr != nil {
				orderRepo.On("Get", ctx, o.ID()).Return(nil, tt.orderErr).Once()
			} else {
				orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
				routeRepo.On("Get", ctx, routeID).Return(nil, tt.routeErr).Once()
			}

			factory := new(MockFactory[commands.TaskUoW])
			factory.On("Create").Return(uow).Once()

			err = newDispatchHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			var notFound *errs.ObjectNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.wantParam, notFound.ParamName)
			taskRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTaskFromOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTaskFromOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockFactory[commands.TaskUoW])
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err = newDispatchHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateTaskFromOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockFactory[commands.TaskUoW])

	err := newDispatchHandler(factory).Handle(t.Context(), commands.CreateTaskFromOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateTaskFromOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
