package warehouse

import (
	"context"
	"database/sql"
	"strings"
)

const sqliteMainSchema = "main"

// dialect covers the statements that differ between warehouse engines.
// Everything in report.go runs unchanged on both.
type dialect interface {
	name() string
	version(ctx context.Context, q Querier) (string, error)
	schemas(ctx context.Context, q Querier) ([]string, error)
	tables(ctx context.Context, q Querier, schema string) ([]string, error)
	columns(ctx context.Context, q Querier, schema, table string) ([]Column, error)
	qualify(schema, table string) string
}

type snowflakeDialect struct{}

func (snowflakeDialect) name() string { return "snowflake" }

func (snowflakeDialect) version(ctx context.Context, q Querier) (string, error) {
	var v string
	if err := q.QueryRowContext(ctx, "SELECT CURRENT_VERSION()").Scan(&v); err != nil {
		return "", newQueryError("current version", err)
	}
	return v, nil
}

func (snowflakeDialect) schemas(ctx context.Context, q Querier) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT SCHEMA_NAME
		FROM INFORMATION_SCHEMA.SCHEMATA
		WHERE SCHEMA_NAME <> 'INFORMATION_SCHEMA'
		ORDER BY SCHEMA_NAME`)
	if err != nil {
		return nil, newQueryError("list schemas", err)
	}
	return collectStrings(rows, "list schemas")
}

func (snowflakeDialect) tables(ctx context.Context, q Querier, schema string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ?
		ORDER BY TABLE_NAME`, schema)
	if err != nil {
		return nil, newQueryError("list tables", err)
	}
	return collectStrings(rows, "list tables")
}

func (snowflakeDialect) columns(ctx context.Context, q Querier, schema, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, `SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`, schema, table)
	if err != nil {
		return nil, newQueryError("list columns", err)
	}
	return collectRows(rows, "list columns", func(rows *sql.Rows) (Column, error) {
		var (
			c        Column
			nullable string
		)
		if err := rows.Scan(&c.Name, &c.Type, &nullable); err != nil {
			return c, err
		}
		c.Nullable = strings.EqualFold(nullable, "YES")
		return c, nil
	})
}

func (snowflakeDialect) qualify(schema, table string) string {
	return quoteIdent(schema) + "." + quoteIdent(table)
}

type sqliteDialect struct{}

func (sqliteDialect) name() string { return "sqlite" }

func (sqliteDialect) version(ctx context.Context, q Querier) (string, error) {
	var v string
	if err := q.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&v); err != nil {
		return "", newQueryError("sqlite version", err)
	}
	return v, nil
}

func (sqliteDialect) schemas(context.Context, Querier) ([]string, error) {
	return []string{sqliteMainSchema}, nil
}

func (sqliteDialect) tables(ctx context.Context, q Querier, _ string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT name
		FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, newQueryError("list tables", err)
	}
	return collectStrings(rows, "list tables")
}

func (sqliteDialect) columns(ctx context.Context, q Querier, _ string, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, `SELECT name, type, "notnull" FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, newQueryError("list columns", err)
	}
	return collectRows(rows, "list columns", func(rows *sql.Rows) (Column, error) {
		var (
			c       Column
			notNull int64
		)
		if err := rows.Scan(&c.Name, &c.Type, &notNull); err != nil {
			return c, err
		}
		c.Nullable = notNull == 0
		return c, nil
	})
}

func (sqliteDialect) qualify(schema, table string) string {
	return quoteIdent(schema) + "." + quoteIdent(table)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// collectRows scans every row with scan and closes rows.
func collectRows[T any](rows *sql.Rows, statement string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, newQueryError(statement, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, newQueryError(statement, err)
	}
	return out, nil
}

func collectStrings(rows *sql.Rows, statement string) ([]string, error) {
	return collectRows(rows, statement, func(rows *sql.Rows) (string, error) {
		var s string
		err := rows.Scan(&s)
		return s, err
	})
}
