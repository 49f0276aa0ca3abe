package shared

import (
	"context"

	"campus-rooms/internal/infra/db"
)

// UnitOfWork runs a read-validate-write cycle against the store. The record
// collections have no protection of their own against concurrent writers, so
// every mutating flow goes through Within and gets a real transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	DB() db.DBTX
}
