package warehouse

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/sandwich-unwrapped/db"
)

type noopTelemetry struct{}

func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }
func (noopTelemetry) MeterProvider() metric.MeterProvider  { return metricnoop.NewMeterProvider() }

// recordingTelemetry keeps finished spans and collected metrics in memory.
type recordingTelemetry struct {
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	tp     *sdktrace.TracerProvider
	mp     *sdkmetric.MeterProvider
}

func newRecordingTelemetry() *recordingTelemetry {
	spans := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()
	return &recordingTelemetry{
		spans:  spans,
		reader: reader,
		tp:     sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
		mp:     sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}
}

func (r *recordingTelemetry) TracerProvider() trace.TracerProvider { return r.tp }
func (r *recordingTelemetry) MeterProvider() metric.MeterProvider  { return r.mp }

// sessionResults sums the sessions counter by its result attribute.
func (r *recordingTelemetry) sessionResults(t *testing.T) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, r.reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "warehouse.sessions" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "sessions must be an int64 sum")
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("result")
				out[v.AsString()] += dp.Value
			}
		}
	}
	return out
}

// countingConnector tracks how many connections were handed out and closed.
type countingConnector struct {
	next     Connector
	acquired atomic.Int64
	released atomic.Int64
	fail     error
}

func (c *countingConnector) Conn(ctx context.Context) (Conn, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	conn, err := c.next.Conn(ctx)
	if err != nil {
		return nil, err
	}
	c.acquired.Add(1)
	return &countingConn{Conn: conn, released: &c.released}, nil
}

type countingConn struct {
	Conn
	released *atomic.Int64
}

func (c *countingConn) Close() error {
	c.released.Add(1)
	return c.Conn.Close()
}

// openEmpty opens a fresh sqlite warehouse without any tables.
func openEmpty(t *testing.T) (*DB, *countingConnector) {
	t.Helper()

	wh, err := Open(context.Background(), Config{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "warehouse.db"),
	}, noopTelemetry{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = wh.Close() })

	counter := &countingConnector{next: wh.conns}
	wh.conns = counter
	return wh, counter
}

// openSeeded opens an sqlite warehouse with the star schema and sample data.
func openSeeded(t *testing.T) (*DB, *countingConnector) {
	t.Helper()

	wh, counter := openEmpty(t)
	ctx := context.Background()
	require.NoError(t, wh.ApplyScript(ctx, db.WarehouseSchema))
	require.NoError(t, wh.ApplyScript(ctx, db.WarehouseSample))
	return wh, counter
}

func assertBalanced(t *testing.T, c *countingConnector) {
	t.Helper()
	assert.Equal(t, c.acquired.Load(), c.released.Load(), "every acquired connection must be released")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "snowflake complete",
			cfg: Config{
				Driver: DriverSnowflake, User: "u", Password: "p", Account: "a",
				Warehouse: "w", Database: "d", Schema: "s",
			},
		},
		{
			name:    "snowflake missing credentials",
			cfg:     Config{Driver: DriverSnowflake, Account: "a", Warehouse: "w", Database: "d", Schema: "s"},
			wantErr: "user, password",
		},
		{
			name: "sqlite",
			cfg:  Config{Driver: DriverSQLite, Path: "wh.db"},
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Driver: DriverSQLite},
			wantErr: "sqlite path is required",
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "oracle"},
			wantErr: "unsupported warehouse driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDo_ReleasesConnection(t *testing.T) {
	wh, counter := openEmpty(t)
	ctx := context.Background()

	require.NoError(t, wh.Do(ctx, "ok", func(ctx context.Context, q Querier) error {
		var one int
		return q.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	}))

	sentinel := errors.New("callback failed")
	err := wh.Do(ctx, "fail", func(context.Context, Querier) error { return sentinel })
	require.ErrorIs(t, err, sentinel)

	assert.Panics(t, func() {
		_ = wh.Do(ctx, "panic", func(context.Context, Querier) error { panic("boom") })
	})

	assert.Equal(t, int64(3), counter.acquired.Load())
	assertBalanced(t, counter)
}

func TestDo_PanicRecordedAsError(t *testing.T) {
	ctx := context.Background()
	tel := newRecordingTelemetry()
	wh, err := Open(ctx, Config{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "warehouse.db"),
	}, tel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wh.Close() })

	require.NoError(t, wh.Do(ctx, "ok", func(context.Context, Querier) error { return nil }))
	assert.PanicsWithValue(t, "boom", func() {
		_ = wh.Do(ctx, "explode", func(context.Context, Querier) error { panic("boom") })
	})

	assert.Equal(t, map[string]int64{"ok": 1, "error": 1}, tel.sessionResults(t))

	spans := tel.spans.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "warehouse.explode", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "panic: boom", spans[1].Status().Description)
}

func TestDo_ConnectionError(t *testing.T) {
	wh, counter := openEmpty(t)
	counter.fail = errors.New("390100: incorrect username or password")

	called := false
	err := wh.Do(context.Background(), "login", func(context.Context, Querier) error {
		called = true
		return nil
	})

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.False(t, called)
	assert.Zero(t, counter.released.Load())
}

func TestQueryError_Classification(t *testing.T) {
	wh, counter := openEmpty(t)
	ctx := context.Background()

	_, err := NewCustomerRepository(wh).FindByPhone(ctx, "555-010-0001")
	require.ErrorIs(t, err, ErrTableNotFound)
	assert.NotErrorIs(t, err, ErrColumnNotFound)

	var qErr *QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, "find customer by phone", qErr.Statement)

	require.NoError(t, wh.ApplyScript(ctx, `CREATE TABLE DIM_CUSTOMER (CUSTOMERKEY INTEGER, FIRSTNAME TEXT)`))
	_, err = NewCustomerRepository(wh).FindByPhone(ctx, "555-010-0001")
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.NotErrorIs(t, err, ErrTableNotFound)

	assert.Equal(t, "table_not_found", resultOf(&QueryError{Err: errors.New("no such table: X")}))
	assert.Equal(t, "query_error", resultOf(&QueryError{Err: errors.New("syntax error")}))
	assert.Equal(t, "connection_error", resultOf(&ConnectionError{Err: errors.New("dial")}))
	assert.Equal(t, "ok", resultOf(nil))

	assertBalanced(t, counter)
}

func TestApplyScript_SnowflakeRejected(t *testing.T) {
	wh, _ := openEmpty(t)
	wh.dialect = snowflakeDialect{}

	err := wh.ApplyScript(context.Background(), "SELECT 1")
	require.Error(t, err)
}
