package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

// KeyTx is the context key under which the middleware stores the Tx
// wrapper for the current request.
const KeyTx key = "tx"

// DBRepo is the slice of the repository the transaction helper needs.
type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Tx carries the repository through the request context so handlers can
// open a transaction without holding a direct repository reference.
type Tx struct {
	DbRepo DBRepo
}

// TxExecute runs cb inside a database transaction. The repository is
// taken from the request context put there by TxMiddlewareHTTP.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	txWrapper, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction helper is not attached to context")
	}

	return txWrapper.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
