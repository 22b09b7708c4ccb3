package domain

import "context"

// Transactor runs fn as one atomic unit against the store. Repositories
// called with the ctx handed to fn take part in the same transaction; any
// error returned by fn rolls every write back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
