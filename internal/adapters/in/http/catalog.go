package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			Id:          fromKernel(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := decode(ctx, &body); err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, body.Name, body.Description, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return created(ctx, http.StatusCreated, fromKernel(productID))
}
