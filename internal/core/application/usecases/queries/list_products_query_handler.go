package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cachedProduct is the cache representation of ProductResponse.
type cachedProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ListProductsQueryHandler reads the catalog through a cache. The cache
// entry is dropped by CreateProductCommandHandler. A failing cache is
// logged and bypassed.
type ListProductsQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewListProductsQueryHandler(db *gorm.DB, cache ports.Cache, ttl time.Duration, logger *zap.Logger) ListProductsQueryHandler {
	return ListProductsQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("list_products"),
	}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var cached []cachedProduct
	hit, err := h.cache.Get(ctx, catalog.ListCacheKey, &cached)
	if err != nil {
		h.logger.Warn("catalog cache read failed", zap.Error(err))
	}
	if hit {
		if products, convErr := fromCache(cached); convErr == nil {
			return products, nil
		}
	}

	cached, err = h.load(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, catalog.ListCacheKey, cached, h.ttl); err != nil {
		h.logger.Warn("catalog cache write failed", zap.Error(err))
	}

	return fromCache(cached)
}

func (h ListProductsQueryHandler) load(ctx context.Context) ([]cachedProduct, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, price
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]cachedProduct, 0)
	for rows.Next() {
		var p cachedProduct
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func fromCache(cached []cachedProduct) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0, len(cached))
	for _, p := range cached {
		id, err := kernel.UUIDFromBytes(p.ID[:])
		if err != nil {
			return nil, err
		}
		products = append(products, ProductResponse{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return products, nil
}
