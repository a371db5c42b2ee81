package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New("ListClientsQuery must be created via NewListClientsQuery constructor")

// ListClientsQuery lists every client, ordered by display name.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}
