// Package storage persists puzzles and solve results.  Postgres is
// the system of record; Redis caches solve results so repeat
// requests for the same board don't rerun the solver.  Both
// backends are optional at the call-site level: Connect fails fast
// when a backend is unreachable, and callers that only want
// in-process solving simply don't Connect.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

// Connect opens the cache and database connections and makes sure
// the schema is in place.  It returns the identifiers of the
// backends it connected to for logging.
func Connect(ctx context.Context) (cacheId, databaseId string, err error) {
	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect(ctx)
	if err != nil {
		return
	}

	if err = EnsureSchema(ctx); err != nil {
		err = fmt.Errorf("couldn't initialize database schema: %v", err)
	}
	return
}

// Close shuts down both backends.
func Close(ctx context.Context) {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose(ctx)
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the open Redis connection.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex and connection
// held.  Because Redis connections can go away without warning, we
// ping first and reconnect if the connection has died.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %v", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/sieve?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect(ctx context.Context) (string, error) {
	conn, err := pgx.Connect(ctx, pgUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the open Postgres connection.
func pgClose(ctx context.Context) {
	if pgConn != nil {
		pgConn.Close(ctx)
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If the
// body errs out, the transaction is rolled back, otherwise it's
// committed.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
