package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	pingTimeout   = 1 * time.Second
	insertTimeout = 3 * time.Second
)

// Postgres appends records into an insert-only table:
//
//	CREATE TABLE <table> (
//	    record_id   UUID PRIMARY KEY,
//	    recorded_at TIMESTAMPTZ NOT NULL,
//	    payload     JSONB NOT NULL
//	);
type Postgres struct {
	db    *sql.DB
	query string
}

func NewPostgres(db *sql.DB, table string) *Postgres {
	return &Postgres{
		db: db,
		query: fmt.Sprintf(`
			INSERT INTO %s (record_id, recorded_at, payload)
			VALUES ($1, $2, $3)
		`, table),
	}
}

func (j *Postgres) Append(ctx context.Context, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return withTimeout(ctx, insertTimeout, func(ctx context.Context) error {
		_, err := j.db.ExecContext(ctx, j.query, uuid.NewString(), time.Now().UTC(), b)
		return err
	})
}

func (j *Postgres) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return j.db.PingContext(ctx)
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
