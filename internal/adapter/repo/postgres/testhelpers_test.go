package postgres_test

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// rowStub implements pgx.Row
type rowStub struct{ scan func(dest ...any) error }

func (r rowStub) Scan(dest ...any) error { return r.scan(dest...) }

// rowsStub implements pgx.Rows over a fixed list of scan funcs.
type rowsStub struct {
	scans []func(dest ...any) error
	pos   int
	err   error
}

func (r *rowsStub) Close()                                       {}
func (r *rowsStub) Err() error                                   { return r.err }
func (r *rowsStub) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *rowsStub) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *rowsStub) Next() bool                                   { return r.pos < len(r.scans) }
func (r *rowsStub) Scan(dest ...any) error {
	s := r.scans[r.pos]
	r.pos++
	return s(dest...)
}
func (r *rowsStub) Values() ([]any, error) { return nil, nil }
func (r *rowsStub) RawValues() [][]byte    { return nil }
func (r *rowsStub) Conn() *pgx.Conn        { return nil }

// execCall records one statement issued through Exec, on the pool or a tx.
type execCall struct {
	sql  string
	args []any
}

// txStub implements pgx.Tx, recording Exec/QueryRow calls.
type txStub struct {
	execs      []execCall
	execErr    error
	row        rowStub
	committed  bool
	rolledBack bool
}

func (t *txStub) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *txStub) Commit(_ context.Context) error {
	t.committed = true
	return nil
}
func (t *txStub) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}
func (t *txStub) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *txStub) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *txStub) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *txStub) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *txStub) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, t.execErr
}
func (t *txStub) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return &rowsStub{}, nil
}
func (t *txStub) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	if t.row.scan == nil {
		return rowStub{scan: func(_ ...any) error { return errors.New("no tx row configured") }}
	}
	return t.row
}
func (t *txStub) Conn() *pgx.Conn { return nil }

// poolStub implements postgres.PgxPool for tests.
// Defined in a shared helper so multiple *_test.go files can reuse it.
type poolStub struct {
	execs    []execCall
	execTag  pgconn.CommandTag
	execErr  error
	row      rowStub
	rows     *rowsStub
	queryErr error
	tx       *txStub
	beginErr error
}

func (p *poolStub) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.execs = append(p.execs, execCall{sql: sql, args: args})
	return p.execTag, p.execErr
}

func (p *poolStub) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	if p.row.scan == nil {
		return rowStub{scan: func(_ ...any) error { return errors.New("no row configured") }}
	}
	return p.row
}

func (p *poolStub) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	if p.rows == nil {
		return &rowsStub{}, nil
	}
	return p.rows, nil
}

func (p *poolStub) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	if p.tx == nil {
		p.tx = &txStub{}
	}
	return p.tx, nil
}

func setInt64(dest any, v int64) {
	if p, ok := dest.(*int64); ok {
		*p = v
	}
}
