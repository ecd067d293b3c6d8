package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeBody struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Degraded map[string]string `json:"degraded"`
}

func passing() CheckFunc {
	return func(context.Context) error { return nil }
}

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func probe(t *testing.T, endpoint http.HandlerFunc) (int, probeBody) {
	t.Helper()

	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body probeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func runTimes(c *check, n int) {
	for range n {
		c.run(context.Background())
	}
}

func TestLiveEndpoint_AllPassing(t *testing.T) {
	h := New()
	h.AddLivenessCheck("a", time.Second, passing())
	h.AddLivenessCheck("b", time.Second, passing())

	code, body := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Checks)
}

func TestLiveEndpoint_FailureThreshold(t *testing.T) {
	h := New()
	h.AddLivenessCheck("db", time.Second, failing("connection refused"))

	runTimes(h.liveness[0], 2)
	code, _ := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "two failures stay below the default threshold")

	runTimes(h.liveness[0], 1)
	code, body := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "connection refused", body.Checks["db"])
}

func TestWithThresholds(t *testing.T) {
	h := New()
	h.AddLivenessCheck("strict", time.Second, failing("down"), WithThresholds(1, 2))
	c := h.liveness[0]

	runTimes(c, 1)
	assert.False(t, c.healthy.Load())

	c.fn = passing()
	runTimes(c, 1)
	assert.False(t, c.healthy.Load(), "one success is below the success threshold")
	runTimes(c, 1)
	assert.True(t, c.healthy.Load())
}

func TestReadyEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		checks     map[string]CheckFunc
		wantCode   int
		wantStatus string
		wantFailed []string
	}{
		{
			name:       "ReadyAndPassing",
			ready:      true,
			checks:     map[string]CheckFunc{"postgres": passing()},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "NotMarkedReady",
			checks:     map[string]CheckFunc{"postgres": passing()},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantFailed: []string{"_readiness"},
		},
		{
			name:       "OneFailing",
			ready:      true,
			checks:     map[string]CheckFunc{"postgres": passing(), "cache": failing("cold")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantFailed: []string{"cache"},
		},
		{
			name:       "NoChecks",
			ready:      true,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			for name, fn := range tt.checks {
				h.AddReadinessCheck(name, time.Second, fn, WithThresholds(1, 1))
			}
			for _, c := range h.readiness {
				runTimes(c, 1)
			}
			h.SetReady(tt.ready)

			code, body := probe(t, h.ReadyEndpoint)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, body.Status)
			for _, name := range tt.wantFailed {
				assert.Contains(t, body.Checks, name)
			}
			assert.Equal(t, tt.wantCode == http.StatusOK, h.IsReady())
		})
	}
}

func TestReadyEndpoint_OptionalCheckDegrades(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", time.Second, passing())
	h.AddReadinessCheck("warehouse", time.Second, failing("390100: auth failed"), Optional(), WithThresholds(1, 1))
	h.SetReady(true)
	runTimes(h.readiness[1], 1)

	code, body := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "390100: auth failed", body.Degraded["warehouse"])
	assert.Empty(t, body.Checks)
	assert.True(t, h.IsReady())
}

func TestCheckRecovery(t *testing.T) {
	h := New()
	var mu sync.Mutex
	fail := true
	h.AddReadinessCheck("flaky", time.Second, func(context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return errors.New("down")
		}
		return nil
	})
	h.SetReady(true)
	c := h.readiness[0]

	runTimes(c, 3)
	assert.False(t, h.IsReady())
	assert.EqualError(t, c.err(), "down")

	mu.Lock()
	fail = false
	mu.Unlock()
	runTimes(c, 1)
	assert.True(t, h.IsReady())
	assert.NoError(t, c.err())
}

func TestCheckTimeout(t *testing.T) {
	h := New()
	h.AddLivenessCheck("slow", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithThresholds(1, 1))

	runTimes(h.liveness[0], 1)
	assert.ErrorIs(t, h.liveness[0].err(), context.DeadlineExceeded)
}

func TestStartStop(t *testing.T) {
	h := New()
	var mu sync.Mutex
	runs := 0
	h.AddLivenessCheck("counter", time.Second, func(context.Context) error {
		mu.Lock()
		runs++
		mu.Unlock()
		return nil
	})

	h.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs >= 2
	}, time.Second, 5*time.Millisecond)

	h.Stop()
	h.Stop()
}

func TestConcurrentProbes(t *testing.T) {
	h := New()
	h.AddLivenessCheck("a", time.Second, passing())
	h.AddReadinessCheck("b", time.Second, failing("x"))
	h.SetReady(true)
	h.Start(context.Background(), time.Millisecond)
	defer h.Stop()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
		}()
		go func() {
			defer wg.Done()
			_ = h.IsReady()
		}()
	}
	wg.Wait()
}

func TestPingCheck(t *testing.T) {
	assert.NoError(t, PingCheck(pingFunc(func(context.Context) error { return nil }))(context.Background()))
	assert.EqualError(t, PingCheck(pingFunc(func(context.Context) error {
		return errors.New("no route")
	}))(context.Background()), "no route")
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}
