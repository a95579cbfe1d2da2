// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-notes/cliparse"
)

// Dialect selects the placeholder style and schema variant
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// DB is a connection pool that knows which SQL dialect it speaks
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to the database described by dbType and url.
// SQLite pools are limited to one connection so that in-memory
// databases are shared and writes are serialized.
func Open(dbType, url string) (*DB, error) {
	var (
		driver  string
		dialect = Postgres
	)

	switch dbType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabasePgx:
		driver = "pgx"
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
		dialect = SQLite
		url = withForeignKeys(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite {
		conn.SetMaxOpenConns(1)
	}

	return &DB{DB: conn, Dialect: dialect}, nil
}

// Wrap adapts an already opened pool.
func Wrap(conn *sql.DB, dialect Dialect) *DB {
	return &DB{DB: conn, Dialect: dialect}
}

// Rebind converts ? placeholders into $N placeholders for PostgreSQL.
// Question marks inside single-quoted literals are left alone.
func (d *DB) Rebind(query string) string {
	if d.Dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SQLite ignores REFERENCES ... ON DELETE CASCADE unless foreign_keys is on
func withForeignKeys(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
