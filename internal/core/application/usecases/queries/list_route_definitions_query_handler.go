package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRouteDefinitionsQueryHandler struct {
	db *gorm.DB
}

func NewListRouteDefinitionsQueryHandler(db *gorm.DB) ListRouteDefinitionsQueryHandler {
	return ListRouteDefinitionsQueryHandler{db: db}
}

func (h ListRouteDefinitionsQueryHandler) Handle(
	ctx context.Context,
	query ListRouteDefinitionsQuery,
) ([]RouteDefinitionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, city
		FROM route_definitions
		ORDER BY city, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	definitions := make([]RouteDefinitionResponse, 0)
	for rows.Next() {
		var d RouteDefinitionResponse
		var id uuid.UUID
		if err = rows.Scan(&id, &d.Name, &d.City); err != nil {
			return nil, err
		}
		if d.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		definitions = append(definitions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return definitions, nil
}
