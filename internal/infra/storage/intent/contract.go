package intent

import (
	"context"
	"database/sql"
)

// DBExecutor is the minimal database surface the repository needs,
// satisfied by *sql.DB and *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
