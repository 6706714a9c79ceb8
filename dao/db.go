package dao

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Db is the slice of pgxpool.Pool the daos need. *pgxpool.Pool satisfies it.
type Db interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

var (
	once     sync.Once
	instance Db
)

// GetClient returns the shared connection pool, creating it on first call.
// The pool connects lazily; an unreachable server surfaces on first query,
// not here.
func GetClient(dsn string) (Db, error) {
	var err error

	once.Do(func() {
		var pool *pgxpool.Pool
		pool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			return
		}
		instance = pool
	})

	return instance, err
}
