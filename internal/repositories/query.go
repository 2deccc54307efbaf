package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
)

// TxGetter returns the request-scoped transaction, or nil when there is none.
type TxGetter func(ctx context.Context) *sqlx.Tx

// logQuery logs a statement in a single line together with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// executor prefers the transaction stored in ctx over the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
