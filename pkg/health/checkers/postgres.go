package checkers

import (
	"context"
	"time"
)

// pinger is the slice of pgxpool.Pool the checker needs.
type pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = time.Second

// PostgresChecker reports database reachability for readiness probes.
type PostgresChecker struct {
	db pinger
}

func NewPostgresChecker(db pinger) *PostgresChecker {
	return &PostgresChecker{db: db}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.db.Ping(ctx)
}
