package pg

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

import "context"

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn as one unit of work. Every repository call made with the
// ctx passed to fn joins the same transaction.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}
