// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries run SQL directly against the tables written by the repositories
// and return read models shaped for their callers.
package queries

import (
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func toOptionalUUID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	return kernel.OptionalUUID(&raw.UUID)
}
