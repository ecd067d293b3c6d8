package httpmiddleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type noopTelemetry struct{}

func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }
func (noopTelemetry) MeterProvider() metric.MeterProvider  { return metricnoop.NewMeterProvider() }

func testMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/customer/{customer_key}/favorite-sandwich/{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/boom/{$}", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})
	mux.HandleFunc("GET /api/fail/{$}", func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusInternalServerError, "Query failed", "QUERY_ERROR")
	})
	return mux
}

type testRoute struct {
	id      string
	pattern string
}

func (r testRoute) OperationID() string { return r.id }
func (r testRoute) PathPattern() string { return r.pattern }

// testRouter matches the routes served by testMux the way the generated
// server does: the /api prefix is stripped and parameters are named.
type testRouter struct{}

func (testRouter) FindPath(method string, u *url.URL) (testRoute, bool) {
	if method != http.MethodGet {
		return testRoute{}, false
	}
	parts := strings.Split(strings.TrimPrefix(u.Path, "/api/"), "/")
	switch {
	case len(parts) == 4 && parts[0] == "customer" && parts[2] == "favorite-sandwich" && parts[3] == "":
		return testRoute{id: "favoriteSandwich", pattern: "/customer/{customer_key}/favorite-sandwich/"}, true
	case len(parts) == 2 && parts[0] == "fail" && parts[1] == "":
		return testRoute{id: "fail", pattern: "/fail/"}, true
	default:
		return testRoute{}, false
	}
}

func TestWrap_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(okHandler(), mark("outer"), mark("middle"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "middle", "inner"}, order)
}

func TestMakeRouteFinder(t *testing.T) {
	find := MakeRouteFinder[testRoute](testRouter{})

	route, ok := find(httptest.NewRequest(http.MethodGet, "/api/customer/42/favorite-sandwich/", nil))
	require.True(t, ok)
	assert.Equal(t, "GET /customer/{customer_key}/favorite-sandwich/", route)

	_, ok = find(httptest.NewRequest(http.MethodPost, "/api/customer/42/favorite-sandwich/", nil))
	assert.False(t, ok)
	_, ok = find(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.False(t, ok)
}

func TestLimitBody(t *testing.T) {
	var (
		read int
		err  error
	)
	h := LimitBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var b []byte
		b, err = io.ReadAll(r.Body)
		read = len(b)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))
	require.NoError(t, err)
	assert.Equal(t, 8, read)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, err, &maxErr)
	assert.EqualValues(t, 8, maxErr.Limit)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusNotFound, "User not found", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	WriteError(w, http.StatusInternalServerError, `Table "X" not found`, "TABLE_NOT_FOUND")
	assert.JSONEq(t, `{"message":"Table \"X\" not found","error_code":"TABLE_NOT_FOUND"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Wrap(testMux(), InjectLogger(zap.New(core)), Recovery())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boom/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An unexpected error occurred","error_code":"UNEXPECTED_ERROR"}`, w.Body.String())
	require.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestRecovery_AbortHandler(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var seen string
	h := Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		zctx.From(r.Context()).Info("inside")
	}), InjectLogger(zap.New(core)), RequestID())

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

		entries := logs.FilterMessage("inside").All()
		require.NotEmpty(t, entries)
		assert.Equal(t, "abc-123", entries[len(entries)-1].ContextMap()["request_id"])
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, bad := range []string{strings.Repeat("x", 129), "bad\nid"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, bad)
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.NotEqual(t, bad, seen)
			assert.Len(t, seen, 36)
		}
	})

	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mux := testMux()
	find := MakeRouteFinder[testRoute](testRouter{})
	h := Wrap(mux,
		InjectLogger(zap.New(core)),
		Instrument("sandwich-api", find, noopTelemetry{}),
		LogRequests(find),
		Labeler(find),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/customer/7/favorite-sandwich/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fail/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	ok := logs.FilterMessage("Request").All()
	require.Len(t, ok, 2)
	assert.Equal(t, "GET /customer/{customer_key}/favorite-sandwich/", ok[0].ContextMap()["route"])
	assert.EqualValues(t, http.StatusOK, ok[0].ContextMap()["status"])
	assert.Equal(t, "unmatched", ok[1].ContextMap()["route"])
	assert.EqualValues(t, http.StatusNotFound, ok[1].ContextMap()["status"])

	failed := logs.FilterMessage("Request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.EqualValues(t, http.StatusInternalServerError, failed[0].ContextMap()["status"])
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		cfg         CORSConfig
		method      string
		origin      string
		preflight   bool
		wantCode    int
		wantOrigin  string
		wantCreds   bool
		wantMaxAge  string
		wantHeaders string
	}{
		{
			name:       "WildcardSimple",
			cfg:        CORSConfig{AllowOrigins: []string{"*"}},
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantCode:   http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:        "Preflight",
			cfg:         CORSConfig{AllowOrigins: []string{"http://localhost:3000"}, AllowHeaders: []string{"Content-Type"}, MaxAge: 600},
			method:      http.MethodOptions,
			origin:      "http://LOCALHOST:3000",
			preflight:   true,
			wantCode:    http.StatusNoContent,
			wantOrigin:  "http://localhost:3000",
			wantMaxAge:  "600",
			wantHeaders: "Content-Type",
		},
		{
			name:      "PreflightRejected",
			cfg:       CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
			method:    http.MethodOptions,
			origin:    "http://evil.example",
			preflight: true,
			wantCode:  http.StatusNoContent,
		},
		{
			name:       "CredentialsListedOrigin",
			cfg:        CORSConfig{AllowOrigins: []string{"http://app.example"}, AllowCredentials: true},
			method:     http.MethodPost,
			origin:     "http://app.example",
			wantCode:   http.StatusOK,
			wantOrigin: "http://app.example",
			wantCreds:  true,
		},
		{
			name:       "CredentialsNotReflectedForWildcard",
			cfg:        CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true},
			method:     http.MethodPost,
			origin:     "http://evil.example",
			wantCode:   http.StatusOK,
			wantOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORS(tt.cfg)(okHandler())
			req := httptest.NewRequest(tt.method, "/api/login/", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials") == "true")
			assert.Equal(t, tt.wantMaxAge, w.Header().Get("Access-Control-Max-Age"))
			assert.Equal(t, tt.wantHeaders, w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, sw.code())

	_, err := sw.Write([]byte(`{}`))
	require.NoError(t, err)
	sw.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusOK, sw.code())
	assert.Equal(t, 2, sw.bytes)
	assert.Same(t, rec, sw.Unwrap())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}
