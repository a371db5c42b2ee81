package http

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type openapiID = openapi_types.UUID

// pathUUID binds a uuid path parameter the way generated servers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return toKernel(raw)
}

// queryUUID binds an optional uuid query parameter.
func queryUUID(ctx echo.Context, name string) (*kernel.UUID, error) {
	var raw *openapi_types.UUID
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &raw)
	if err != nil {
		return nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return toOptionalKernel(raw)
}

func toKernel(raw openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func toOptionalKernel(raw *openapi_types.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := toKernel(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromKernel(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func fromOptionalKernel(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
