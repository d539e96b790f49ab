// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-settings/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the settings table read by [SQL] when none is configured.
const DefaultTable = "settings"

// SQL provides name/value rows of a settings table, ordered by the
// position column and then by name. NULL values are returned as nil.
type SQL struct {
	db     *sql.DB
	driver string
	table  string
	prefix string
}

// NewSQL returns a provider reading table through db. driver is the
// database/sql driver name db was opened with; it selects the placeholder
// format. prefix, when non-empty, limits rows to names starting with it.
func NewSQL(db *sql.DB, driver, table, prefix string) *SQL {
	if table == "" {
		table = DefaultTable
	}

	return &SQL{db: db, driver: driver, table: table, prefix: prefix}
}

func (s *SQL) Name() string {
	return "sql:" + s.table
}

func (s *SQL) Load(ctx context.Context) (*Map, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.buildSelectQuery()
	if err != nil {
		return nil, fmt.Errorf("error building settings query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("table", s.table).Msg("error querying settings table")
		return nil, s.classify(err)
	}
	defer rows.Close()

	out := NewMap()
	for rows.Next() {
		var (
			name  string
			value sql.NullString
		)
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("error scanning settings row: %w", err)
		}
		if value.Valid {
			out.Set(name, value.String)
		} else {
			out.Set(name, nil)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading settings rows: %w", err)
	}

	log.Debug().Str("table", s.table).Int("rows", out.Len()).Msg("loaded settings rows")

	return out, nil
}

func (s *SQL) buildSelectQuery() (string, []any, error) {
	builder := sq.Select("name", "value").
		From(s.table).
		OrderBy("position", "name").
		PlaceholderFormat(placeholderFormat(s.driver))

	if s.prefix != "" {
		builder = builder.Where(sq.Expr(`name LIKE ? ESCAPE '\'`, likePrefix(s.prefix)))
	}

	return builder.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix returns a LIKE pattern matching names that start with prefix
// literally.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

func (s *SQL) classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %s: %w", ErrTableNotFound, s.table, err)
	}

	return fmt.Errorf("error querying settings table %s: %w", s.table, err)
}

func placeholderFormat(driver string) sq.PlaceholderFormat {
	if driver == "pgx" {
		return sq.Dollar
	}

	return sq.Question
}

// OpenDB opens and pings a database. Supported drivers are "pgx" (alias
// "postgres") and "sqlite3" (alias "sqlite"). The normalized driver name is
// returned for use with [NewSQL].
func OpenDB(ctx context.Context, driver, dsn string, log *logger.Logger) (*sql.DB, string, error) {
	switch driver {
	case "pgx", "postgres":
		driver = "pgx"
	case "sqlite3", "sqlite":
		driver = "sqlite3"
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error opening database")
		return nil, "", fmt.Errorf("error opening database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, "", fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("driver", driver).Msg("connected to database successfully")

	return conn, driver, nil
}
