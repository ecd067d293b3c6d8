//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/sandwich-unwrapped/db"
	"github.com/xenking/sandwich-unwrapped/internal/repository"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

var (
	baseURL    string
	httpClient *http.Client
	seededUser int64
)

type noopTelemetry struct{}

func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }
func (noopTelemetry) MeterProvider() metric.MeterProvider  { return metricnoop.NewMeterProvider() }

// Response types are local so the tests only see the wire format.

type healthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks,omitempty"`
	Degraded map[string]string `json:"degraded,omitempty"`
}

type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    struct {
		ID          int64  `json:"id"`
		CustomerKey string `json:"customer_key"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
	} `json:"user"`
}

type reportResponse struct {
	CustomerKey      string `json:"customer_key"`
	FavoriteSandwich struct {
		Name         string `json:"name"`
		TimesOrdered int64  `json:"times_ordered"`
	} `json:"favorite_sandwich"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSpent    float64 `json:"total_spent"`
	OrderTimeline []struct {
		Month      string `json:"month"`
		Year       int    `json:"year"`
		Sandwiches int64  `json:"sandwiches"`
	} `json:"order_timeline"`
}

type detailsResponse struct {
	SandwichDetails []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"sandwich_details"`
}

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dc, err := tc.NewDockerCompose("testdata/docker-compose.yml")
	if err != nil {
		log.Fatalf("compose init: %v", err)
	}
	defer func() {
		if err := dc.Down(context.Background(), tc.RemoveOrphans(true), tc.RemoveVolumes(true)); err != nil {
			log.Printf("compose down: %v", err)
		}
	}()

	err = dc.
		WaitForService("postgres", wait.ForListeningPort("5432/tcp")).
		Up(ctx, tc.Wait(true))
	if err != nil {
		log.Fatalf("compose up: %v", err)
	}

	pg, err := dc.ServiceContainer(ctx, "postgres")
	if err != nil {
		log.Fatalf("postgres container: %v", err)
	}
	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatalf("host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("mapped port: %v", err)
	}
	databaseURL := fmt.Sprintf("postgres://sandwich:sandwich@%s:%s/sandwich?sslmode=disable", host, port.Port())

	dir, err := os.MkdirTemp("", "sandwich-app")
	if err != nil {
		log.Fatalf("temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	whCfg := warehouse.Config{Driver: warehouse.DriverSQLite, Path: filepath.Join(dir, "warehouse.db")}
	if err := seed(ctx, databaseURL, whCfg); err != nil {
		log.Fatalf("seed: %v", err)
	}

	addr, err := freeAddr()
	if err != nil {
		log.Fatalf("listen: %v", err)
	}

	cfg := &Config{
		Addr:        addr,
		DatabaseURL: databaseURL,
		Warehouse:   whCfg,
		Inspect:     InspectConfig{SampleRows: 2},
		CORS:        CORSConfig{Origins: []string{"*"}},
		Graceful:    GracefulConfig{ShutdownTimeout: 5 * time.Second},
	}

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- Run(runCtx, zap.NewNop(), noopTelemetry{}, cfg) }()

	baseURL = "http://" + addr
	httpClient = &http.Client{Timeout: 10 * time.Second}
	if err := waitReady(ctx); err != nil {
		log.Fatalf("wait ready: %v", err)
	}

	result := m.Run()

	stop()
	if err := <-done; err != nil {
		log.Printf("run: %v", err)
		result = 1
	}
	return result
}

// seed creates the local user the warehouse sandwich details belong to and
// provisions the sqlite warehouse.
func seed(ctx context.Context, databaseURL string, whCfg warehouse.Config) error {
	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return err
	}
	u, err := repository.NewUserRepository(pool).Upsert(ctx, "Ada", "Lovelace")
	if err != nil {
		return err
	}
	seededUser = u.ID

	wh, err := warehouse.Open(ctx, whCfg, noopTelemetry{})
	if err != nil {
		return err
	}
	defer func() { _ = wh.Close() }()

	if err := wh.ApplyScript(ctx, db.WarehouseSchema); err != nil {
		return err
	}
	return wh.ApplyScript(ctx, db.WarehouseSample)
}

func freeAddr() (string, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer func() { _ = l.Close() }()
	return l.Addr().String(), nil
}

func waitReady(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			resp, err := http.Get(baseURL + "/readyz")
			if err != nil {
				continue
			}
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
	}
}

func doRequest(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, baseURL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	for _, path := range []string{"/livez", "/readyz"} {
		t.Run(path, func(t *testing.T) {
			resp := doRequest(t, http.MethodGet, path, nil, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "ok", decodeJSON[healthResponse](t, resp).Status)
		})
	}
}

func TestRequestID(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/hello/", nil, nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = doRequest(t, http.MethodGet, "/api/hello/", nil, map[string]string{"X-Request-ID": "custom-request-id-12345"})
	assert.Equal(t, "custom-request-id-12345", resp.Header.Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	resp := doRequest(t, http.MethodOptions, "/api/login/", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "POST",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestLogin(t *testing.T) {
	t.Run("Phone", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/api/login/", map[string]string{"phone_number": "555-010-0002"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeJSON[loginResponse](t, resp)
		assert.Equal(t, "2", body.User.CustomerKey)
		assert.Equal(t, "Turing", body.User.LastName)
	})
	t.Run("Name", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/api/login/", map[string]string{"first_name": "Ada", "last_name": "Lovelace"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, seededUser, decodeJSON[loginResponse](t, resp).User.ID)
	})
	t.Run("UnknownPhone", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, "/api/login/", map[string]string{"phone_number": "000"}, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Phone number not found in records", decodeJSON[errorResponse](t, resp).Message)
	})
}

func TestSandwichDetails(t *testing.T) {
	require.Equal(t, int64(1), seededUser, "sample details belong to customer id 1")

	resp := doRequest(t, http.MethodGet, fmt.Sprintf("/api/sandwich-details/%d/", seededUser), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON[detailsResponse](t, resp)
	require.Len(t, body.SandwichDetails, 2)
	assert.Equal(t, "Turkey Club", body.SandwichDetails[0].Name)
}

func TestSandwichReport(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/customer/1/sandwich-report/", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[reportResponse](t, resp)
	assert.Equal(t, "1", body.CustomerKey)
	assert.Equal(t, "Turkey Club", body.FavoriteSandwich.Name)
	assert.Equal(t, int64(9), body.TotalOrders)
	assert.InDelta(t, 115.0, body.TotalSpent, 0.001)
	require.NotEmpty(t, body.OrderTimeline)
	assert.Equal(t, "January", body.OrderTimeline[0].Month)
	assert.Equal(t, 2025, body.OrderTimeline[0].Year)

	resp = doRequest(t, http.MethodGet, "/api/customer/3/sandwich-report/", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDiagnostics(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/check-customer-table/", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, "/api/test-snowflake/", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
