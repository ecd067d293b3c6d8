package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
	"github.com/xenking/sandwich-unwrapped/pkg/httpmiddleware"
)

// Machine-readable codes of 500 responses.
const (
	CodeTableNotFound   = "TABLE_NOT_FOUND"
	CodeMissingColumns  = "MISSING_COLUMNS"
	CodeQueryError      = "QUERY_ERROR"
	CodeConnectionError = "CONNECTION_ERROR"
	CodeUnexpected      = "UNEXPECTED_ERROR"
)

const unexpectedMessage = "An unexpected error occurred"

// apiError is a client-facing 4xx outcome.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(message string) error {
	return &apiError{status: http.StatusBadRequest, message: message}
}

func notFound(message string) error {
	return &apiError{status: http.StatusNotFound, message: message}
}

// NewError maps an endpoint error onto the uniform error body and logs it.
// Driver messages are logged but never returned to the client.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	lg := zctx.From(ctx)

	var (
		apiErr   *apiError
		connErr  *warehouse.ConnectionError
		queryErr *warehouse.QueryError
	)
	if errors.As(err, &apiErr) {
		lg.Info("Request rejected", zap.Int("status", apiErr.status), zap.String("reason", apiErr.message))
		return errorStatus(apiErr.status, apiErr.message, "")
	}

	var message, code string
	switch {
	case errors.Is(err, warehouse.ErrTableNotFound):
		message, code = "Required warehouse table was not found", CodeTableNotFound
	case errors.Is(err, warehouse.ErrColumnNotFound):
		message, code = "Warehouse table is missing expected columns", CodeMissingColumns
	case errors.As(err, &connErr):
		message, code = "Could not connect to the data warehouse", CodeConnectionError
	case errors.As(err, &queryErr):
		message, code = "Error querying the data warehouse", CodeQueryError
	default:
		message, code = unexpectedMessage, CodeUnexpected
	}
	lg.Error("Request failed", zap.String("error_code", code), zap.Error(err))
	return errorStatus(http.StatusInternalServerError, message, code)
}

func errorStatus(status int, message, code string) *oas.ErrorStatusCode {
	resp := oas.Error{Message: message}
	if code != "" {
		resp.ErrorCode = oas.NewOptString(code)
	}
	return &oas.ErrorStatusCode{StatusCode: status, Response: resp}
}

// ErrorHandler writes errors raised by the generated server before an
// endpoint runs, such as an undecodable body or path parameter.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		paramErr *ogenerrors.DecodeParamError
		bodyErr  *ogenerrors.DecodeRequestError
	)
	status := ogenerrors.ErrorCode(err)
	var message, code string
	switch {
	case errors.As(err, &paramErr):
		status, message = http.StatusBadRequest, "Invalid "+strings.ReplaceAll(paramErr.Name, "_", " ")
	case errors.As(err, &bodyErr):
		status, message = http.StatusBadRequest, "Invalid JSON body"
	case status >= http.StatusInternalServerError:
		message, code = unexpectedMessage, CodeUnexpected
	default:
		message = http.StatusText(status)
	}

	lg := zctx.From(ctx)
	if code != "" {
		lg.Error("Request failed", zap.String("error_code", code), zap.Error(err))
	} else {
		lg.Info("Request rejected", zap.Int("status", status), zap.Error(err))
	}
	httpmiddleware.WriteError(w, status, message, code)
}

// NotFound answers API paths that match no operation.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httpmiddleware.WriteError(w, http.StatusNotFound, "Not found", "")
}

// MethodNotAllowed answers a known API path requested with another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpmiddleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
}
