// Package warehouse provides scoped, instrumented access to the analytical
// data warehouse that holds the order star schema.
//
// Production deployments talk to Snowflake through gosnowflake. The sqlite
// driver serves local development and tests; report statements are written in
// the SQL subset both engines accept, and catalog introspection goes through
// a per-driver dialect.
package warehouse

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/snowflakedb/gosnowflake"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Supported warehouse drivers.
const (
	DriverSnowflake = "snowflake"
	DriverSQLite    = "sqlite"
)

const instrumentationName = "github.com/xenking/sandwich-unwrapped/internal/warehouse"

// Config describes how to reach the warehouse.
type Config struct {
	Driver    string `default:"snowflake" usage:"Warehouse driver: snowflake or sqlite"`
	Account   string `usage:"Snowflake account identifier"`
	User      string `usage:"Snowflake user"`
	Password  string `usage:"Snowflake password"`
	Warehouse string `usage:"Snowflake virtual warehouse (compute pool)"`
	Database  string `usage:"Warehouse database name"`
	Schema    string `usage:"Warehouse schema name"`
	Role      string `usage:"Optional Snowflake role"`
	Path      string `default:"warehouse.db" usage:"sqlite database file (sqlite driver only)"`
}

// ApplyEnvFallbacks fills empty Snowflake settings from the SNOWFLAKE_*
// variables understood by the Snowflake tooling.
func (c *Config) ApplyEnvFallbacks() {
	for _, f := range []struct {
		dst *string
		env string
	}{
		{&c.User, "SNOWFLAKE_USER"},
		{&c.Password, "SNOWFLAKE_PASSWORD"},
		{&c.Account, "SNOWFLAKE_ACCOUNT"},
		{&c.Warehouse, "SNOWFLAKE_WAREHOUSE"},
		{&c.Database, "SNOWFLAKE_DATABASE"},
		{&c.Schema, "SNOWFLAKE_SCHEMA"},
		{&c.Role, "SNOWFLAKE_ROLE"},
	} {
		if *f.dst == "" {
			*f.dst = os.Getenv(f.env)
		}
	}
}

// Validate reports the settings the selected driver cannot work without.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSnowflake:
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"user", c.User},
			{"password", c.Password},
			{"account", c.Account},
			{"warehouse", c.Warehouse},
			{"database", c.Database},
			{"schema", c.Schema},
		} {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return errors.Errorf("snowflake settings missing: %s", strings.Join(missing, ", "))
		}
		return nil
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("sqlite path is required")
		}
		return nil
	default:
		return errors.Errorf("unsupported warehouse driver %q", c.Driver)
	}
}

// Telemetry supplies the OpenTelemetry providers used for instrumentation.
type Telemetry interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
}

// Querier runs statements on one acquired warehouse connection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn is an acquired connection. Close returns it to the pool.
type Conn interface {
	Querier
	Close() error
}

// Connector hands out pooled connections.
type Connector interface {
	Conn(ctx context.Context) (Conn, error)
}

type sqlConnector struct {
	db *sql.DB
}

func (c sqlConnector) Conn(ctx context.Context) (Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// DB is a pooled warehouse handle. Every unit of work runs inside Do, which
// owns the connection for exactly the duration of the callback.
type DB struct {
	sql      *sql.DB
	conns    Connector
	dialect  dialect
	database string
	schema   string

	tracer   trace.Tracer
	sessions metric.Int64Counter
	duration metric.Float64Histogram
}

// Open prepares a warehouse pool for cfg. No connection is made until the
// first session, so a warehouse outage does not prevent startup.
func Open(ctx context.Context, cfg Config, tel Telemetry) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	var (
		sqlDB  *sql.DB
		d      dialect
		schema string
		err    error
	)
	switch cfg.Driver {
	case DriverSnowflake:
		dsn, dsnErr := gosnowflake.DSN(&gosnowflake.Config{
			Account:     cfg.Account,
			User:        cfg.User,
			Password:    cfg.Password,
			Warehouse:   cfg.Warehouse,
			Database:    cfg.Database,
			Schema:      cfg.Schema,
			Role:        cfg.Role,
			Application: "sandwich-unwrapped",
		})
		if dsnErr != nil {
			return nil, errors.Wrap(dsnErr, "build snowflake dsn")
		}
		sqlDB, err = sql.Open("snowflake", dsn)
		d = snowflakeDialect{}
		schema = strings.ToUpper(cfg.Schema)
	case DriverSQLite:
		sqlDB, err = sql.Open("sqlite", cfg.Path)
		d = sqliteDialect{}
		schema = sqliteMainSchema
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cfg.Driver)
	}

	db, err := newDB(sqlDB, d, cfg.Database, schema, tel)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	zctx.From(ctx).Info("Warehouse configured",
		zap.String("driver", cfg.Driver),
		zap.String("database", cfg.Database),
		zap.String("schema", schema),
	)
	return db, nil
}

func newDB(sqlDB *sql.DB, d dialect, database, schema string, tel Telemetry) (*DB, error) {
	meter := tel.MeterProvider().Meter(instrumentationName)

	sessions, err := meter.Int64Counter("warehouse.sessions",
		metric.WithDescription("Warehouse sessions by operation and result"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create sessions counter")
	}
	duration, err := meter.Float64Histogram("warehouse.session.duration",
		metric.WithDescription("Time a warehouse connection is held"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create duration histogram")
	}

	return &DB{
		sql:      sqlDB,
		conns:    sqlConnector{db: sqlDB},
		dialect:  d,
		database: database,
		schema:   schema,
		tracer:   tel.TracerProvider().Tracer(instrumentationName),
		sessions: sessions,
		duration: duration,
	}, nil
}

// Do acquires one connection, runs fn on it and releases the connection on
// every exit path, including panics. Acquisition failures are returned as
// *ConnectionError; errors from fn are returned unchanged.
func (d *DB) Do(ctx context.Context, op string, fn func(ctx context.Context, q Querier) error) (err error) {
	ctx, span := d.tracer.Start(ctx, "warehouse."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", d.dialect.name())),
	)
	start := time.Now()
	defer func() {
		p := recover()
		if p != nil {
			err = errors.Errorf("panic: %v", p)
		}
		d.record(ctx, op, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if p != nil {
			panic(p)
		}
	}()

	conn, err := d.conns.Conn(ctx)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			zctx.From(ctx).Warn("Release warehouse connection",
				zap.String("op", op),
				zap.Error(cerr),
			)
		}
	}()

	return fn(ctx, conn)
}

func (d *DB) record(ctx context.Context, op string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("result", resultOf(err)),
	)
	d.sessions.Add(ctx, 1, attrs)
	d.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// Ping verifies that a session can be established.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.sql.PingContext(ctx); err != nil {
		return &ConnectionError{Err: err}
	}
	return nil
}

// Close closes the underlying pool.
func (d *DB) Close() error {
	return d.sql.Close()
}
