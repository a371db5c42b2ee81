package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// DeleteRouteCommandHandler deletes a route, its tasks and their photo rows
// in one transaction. After the commit the photo objects are removed from
// the store; failures there are logged only.
type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	store      ports.PhotoStore
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewDeleteRouteCommandHandler(
	uowFactory RouteUoWFactory,
	store ports.PhotoStore,
	clock kernel.Clock,
	logger *zap.Logger,
) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		clock:      clock,
		logger:     logger.Named("delete_route"),
	}
}

func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	urls := r.Dissolve(h.clock.Now())

	if err = routeRepo.Delete(ctx, r); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("route deleted",
		zap.String("route_id", r.ID().String()),
		zap.Int("tasks", len(r.Tasks())),
		zap.Int("photos", len(urls)),
	)

	removeStoredPhotos(ctx, h.store, h.logger, urls...)
	return nil
}
