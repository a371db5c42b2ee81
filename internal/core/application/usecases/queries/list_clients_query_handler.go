package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY CASE WHEN kind = 'COMPANY' THEN legal_name ELSE full_name END, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]ClientResponse, 0)
	for rows.Next() {
		c, scanErr := scanClient(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
