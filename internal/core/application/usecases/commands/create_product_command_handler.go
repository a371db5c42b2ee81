package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/ports"
)

// CreateProductCommandHandler stores a product and drops the cached
// catalog listing once the product is committed.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	cache      ports.Cache
	logger     *zap.Logger
}

func NewCreateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	cache ports.Cache,
	logger *zap.Logger,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.Named("create_product"),
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := catalog.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.Delete(ctx, catalog.ListCacheKey); err != nil {
		h.logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}

	return nil
}
