// Package httpmiddleware contains the net/http middleware stack shared by the
// API server: recovery, CORS, rate limiting, request ids, logging and
// OpenTelemetry instrumentation.
package httpmiddleware

import (
	"net/http"
	"net/url"

	"github.com/go-faster/jx"
)

// Middleware wraps an http.Handler.
type Middleware func(next http.Handler) http.Handler

// Wrap applies middlewares to h. The first middleware is the outermost one,
// so it sees the request first.
func Wrap(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RouteFinder resolves the route pattern that serves r.
type RouteFinder func(r *http.Request) (pattern string, ok bool)

// Route is a matched API operation.
type Route interface {
	OperationID() string
	PathPattern() string
}

// Router finds the operation serving a method and URL.
type Router[R Route] interface {
	FindPath(method string, u *url.URL) (R, bool)
}

// MakeRouteFinder returns a RouteFinder backed by the router's operation
// table. Patterns are reported as "METHOD /path/{param}/". Unmatched
// requests report ok=false so they do not explode label cardinality with
// raw paths.
func MakeRouteFinder[R Route](router Router[R]) RouteFinder {
	return func(r *http.Request) (string, bool) {
		route, ok := router.FindPath(r.Method, r.URL)
		if !ok {
			return "", false
		}
		return r.Method + " " + route.PathPattern(), true
	}
}

// WriteError writes the JSON error body used across the API:
// {"message": ..., "error_code": ...}. An empty code is omitted.
func WriteError(w http.ResponseWriter, status int, message, code string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("message")
	e.Str(message)
	if code != "" {
		e.FieldStart("error_code")
		e.Str(code)
	}
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// statusWriter records the status code and body size written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LimitBody caps request bodies at limit bytes. Reading past the cap fails,
// which the API reports as an invalid body.
func LimitBody(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
