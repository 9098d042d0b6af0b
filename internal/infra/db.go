// README: Postgres connection pool initialization using pgxpool.
package infra

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDB opens the pool and verifies the database is actually reachable, so a
// misconfigured kiosk fails at boot instead of on the first saved place.
func NewDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
