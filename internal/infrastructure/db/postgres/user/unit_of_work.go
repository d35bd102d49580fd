package user

import (
	"context"

	"github.com/jackc/pgx/v5"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// UnitOfWork hands callers a Repository bound to one postgres transaction.
type UnitOfWork struct {
	tx *postgres.Transactor
}

func NewUnitOfWork(tx *postgres.Transactor) user.UnitOfWork {
	return &UnitOfWork{tx: tx}
}

func (w *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repo user.Repository) error) error {
	return w.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewRepository(tx))
	})
}
