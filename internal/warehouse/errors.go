package warehouse

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/snowflakedb/gosnowflake"
)

// Snowflake error numbers used for classification.
const (
	sfObjectNotFound    = 2003
	sfInvalidIdentifier = 904
)

var (
	// ErrTableNotFound matches query errors caused by a missing table or view.
	ErrTableNotFound = errors.New("warehouse table not found")
	// ErrColumnNotFound matches query errors caused by an unknown column.
	ErrColumnNotFound = errors.New("warehouse column not found")
)

// ConnectionError reports that no warehouse session could be established.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connect to warehouse: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError reports a failed statement. It matches ErrTableNotFound and
// ErrColumnNotFound when the driver error says so.
type QueryError struct {
	Statement string
	Err       error
}

func newQueryError(statement string, err error) error {
	return &QueryError{Statement: statement, Err: err}
}

func (e *QueryError) Error() string {
	return "query " + e.Statement + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// Is implements errors.Is for the classification sentinels.
func (e *QueryError) Is(target error) bool {
	switch target {
	case ErrTableNotFound:
		return isMissingTable(e.Err)
	case ErrColumnNotFound:
		return isMissingColumn(e.Err)
	default:
		return false
	}
}

func isMissingTable(err error) bool {
	var sfErr *gosnowflake.SnowflakeError
	if errors.As(err, &sfErr) {
		return sfErr.Number == sfObjectNotFound
	}
	return strings.Contains(err.Error(), "no such table")
}

func isMissingColumn(err error) bool {
	var sfErr *gosnowflake.SnowflakeError
	if errors.As(err, &sfErr) {
		return sfErr.Number == sfInvalidIdentifier
	}
	return strings.Contains(err.Error(), "no such column")
}

func resultOf(err error) string {
	var connErr *ConnectionError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &connErr):
		return "connection_error"
	case errors.Is(err, ErrTableNotFound):
		return "table_not_found"
	case errors.Is(err, ErrColumnNotFound):
		return "column_not_found"
	default:
		var qErr *QueryError
		if errors.As(err, &qErr) {
			return "query_error"
		}
		return "error"
	}
}
