package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Adapters are the outbound collaborators built from Config.
type Adapters struct {
	Photos    ports.PhotoStore
	Publisher ports.TaskEventPublisher
	Cache     ports.Cache
	Clock     kernel.Clock
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	adapters   Adapters
	config     Config
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, adapters Adapters, logger *zap.Logger) CompositionRoot {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adapters.Clock == nil {
		adapters.Clock = kernel.SystemClock{}
	}
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, adapters.Publisher, logger),
		adapters:   adapters,
		config:     cfg,
		logger:     logger,
	}
}

// UoWFactoryFunc narrows the unit of work to what a handler needs.
type UoWFactoryFunc[T any] func() T

func (f UoWFactoryFunc[T]) Create() T {
	return f()
}

func (c *CompositionRoot) clientUoW() commands.ClientUoWFactory {
	return UoWFactoryFunc[commands.ClientUoW](func() commands.ClientUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoW() commands.CatalogUoWFactory {
	return UoWFactoryFunc[commands.CatalogUoW](func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return UoWFactoryFunc[commands.OrderUoW](func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) routeUoW() commands.RouteUoWFactory {
	return UoWFactoryFunc[commands.RouteUoW](func() commands.RouteUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) taskUoW() commands.TaskUoWFactory {
	return UoWFactoryFunc[commands.TaskUoW](func() commands.TaskUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) employeeUoW() commands.EmployeeUoWFactory {
	return UoWFactoryFunc[commands.EmployeeUoW](func() commands.EmployeeUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoW())
}

func (c *CompositionRoot) CreateUploadClientIDPhotoCommandHandler() commands.UploadClientIDPhotoCommandHandler {
	return commands.NewUploadClientIDPhotoCommandHandler(c.clientUoW(), c.adapters.Photos, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoW(), c.adapters.Cache, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoW(), c.adapters.Clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCreateRouteDefinitionCommandHandler() commands.CreateRouteDefinitionCommandHandler {
	return commands.NewCreateRouteDefinitionCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoW())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.routeUoW())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.routeUoW(), c.adapters.Photos, c.adapters.Clock, c.logger)
}

func (c *CompositionRoot) CreateCreateTaskFromOrderCommandHandler() commands.CreateTaskFromOrderCommandHandler {
	return commands.NewCreateTaskFromOrderCommandHandler(c.taskUoW(), services.NewTaskDispatcher(c.adapters.Clock))
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.taskUoW(), c.adapters.Clock)
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(c.taskUoW(), c.adapters.Clock)
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	return commands.NewDeleteTaskCommandHandler(c.taskUoW(), c.adapters.Photos, c.adapters.Clock, c.logger)
}

func (c *CompositionRoot) CreateAddTaskPhotoCommandHandler() commands.AddTaskPhotoCommandHandler {
	return commands.NewAddTaskPhotoCommandHandler(c.taskUoW(), c.adapters.Photos, c.logger)
}

func (c *CompositionRoot) CreateDeleteTaskPhotoCommandHandler() commands.DeleteTaskPhotoCommandHandler {
	return commands.NewDeleteTaskPhotoCommandHandler(c.taskUoW(), c.adapters.Photos, c.logger)
}

func (c *CompositionRoot) CreateRegisterEmployeeCommandHandler() commands.RegisterEmployeeCommandHandler {
	return commands.NewRegisterEmployeeCommandHandler(c.employeeUoW())
}

func (c *CompositionRoot) CreateEnsureRoleCommandHandler() commands.EnsureRoleCommandHandler {
	return commands.NewEnsureRoleCommandHandler(c.employeeUoW())
}

func (c *CompositionRoot) CreateDeleteEmployeeCommandHandler() commands.DeleteEmployeeCommandHandler {
	return commands.NewDeleteEmployeeCommandHandler(c.employeeUoW())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB, c.adapters.Cache, c.config.CatalogCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoutesQueryHandler() queries.ListRoutesQueryHandler {
	return queries.NewListRoutesQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the API exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterClient:        c.CreateRegisterClientCommandHandler(),
		UploadClientIDPhoto:   c.CreateUploadClientIDPhotoCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		UpdateOrder:           c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		CreateRouteDefinition: c.CreateCreateRouteDefinitionCommandHandler(),
		CreateRoute:           c.CreateCreateRouteCommandHandler(),
		AssignDriver:          c.CreateAssignDriverCommandHandler(),
		DeleteRoute:           c.CreateDeleteRouteCommandHandler(),
		CreateTaskFromOrder:   c.CreateCreateTaskFromOrderCommandHandler(),
		CreateTask:            c.CreateCreateTaskCommandHandler(),
		UpdateTaskStatus:      c.CreateUpdateTaskStatusCommandHandler(),
		DeleteTask:            c.CreateDeleteTaskCommandHandler(),
		AddTaskPhoto:          c.CreateAddTaskPhotoCommandHandler(),
		DeleteTaskPhoto:       c.CreateDeleteTaskPhotoCommandHandler(),
		RegisterEmployee:      c.CreateRegisterEmployeeCommandHandler(),
		EnsureRole:            c.CreateEnsureRoleCommandHandler(),
		DeleteEmployee:        c.CreateDeleteEmployeeCommandHandler(),

		GetClient:            queries.NewGetClientQueryHandler(c.gormDB),
		ListClients:          queries.NewListClientsQueryHandler(c.gormDB),
		ListProducts:         c.CreateListProductsQueryHandler(),
		GetOrder:             queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:           queries.NewListOrdersQueryHandler(c.gormDB),
		ListRouteDefinitions: queries.NewListRouteDefinitionsQueryHandler(c.gormDB),
		GetRoute:             queries.NewGetRouteQueryHandler(c.gormDB),
		ListRoutes:           c.CreateListRoutesQueryHandler(),
		GetTask:              queries.NewGetTaskQueryHandler(c.gormDB),
		ListTasks:            queries.NewListTasksQueryHandler(c.gormDB),
		OrderHasTask:         queries.NewOrderHasTaskQueryHandler(c.gormDB),
		GetEmployee:          queries.NewGetEmployeeQueryHandler(c.gormDB),
		ListEmployees:        c.CreateListEmployeesQueryHandler(),
	}
}
