// Package dbmetrics обертка над *sql.DB с метриками длительности запросов
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// QueryObserver получает длительность каждого запроса
type QueryObserver interface {
	ObserveDBQuery(query string, failed bool, duration time.Duration)
}

// DB обертка над DBExecutor, которая замеряет запросы.
// Запросы группируются по первому слову (insert, select, ...), чтобы не раздувать метки.
type DB struct {
	executor DBExecutor
	observer QueryObserver
}

// Wrap оборачивает executor. observer не должен быть nil.
func Wrap(executor DBExecutor, observer QueryObserver) *DB {
	return &DB{executor: executor, observer: observer}
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := db.executor.ExecContext(ctx, query, args...)
	db.observer.ObserveDBQuery(queryKind(query), err != nil, time.Since(started))
	return res, err
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := db.executor.QueryContext(ctx, query, args...)
	db.observer.ObserveDBQuery(queryKind(query), err != nil, time.Since(started))
	return rows, err
}

// QueryRowContext ошибка *sql.Row видна только при Scan, поэтому failed всегда false
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := db.executor.QueryRowContext(ctx, query, args...)
	db.observer.ObserveDBQuery(queryKind(query), false, time.Since(started))
	return row
}

func queryKind(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "other"
	}

	switch kind := strings.ToLower(fields[0]); kind {
	case "select", "insert", "update", "delete", "create":
		return kind
	default:
		return "other"
	}
}
