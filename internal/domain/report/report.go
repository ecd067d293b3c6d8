package report

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// TimelineMonths is the number of most recent month buckets in a report.
const TimelineMonths = 6

// ErrNoOrders is returned when the customer has no order facts at all.
var ErrNoOrders = errors.New("no orders found for this customer")

// Product is a ranked product of a customer's order history.
type Product struct {
	Name         string
	Calories     *int64
	TimesOrdered int64
}

// Totals aggregates every order fact of a customer.
type Totals struct {
	// Orders counts distinct order dates.
	Orders     int64
	Sandwiches int64
	Spent      decimal.Decimal
}

// Store is a store location from the store dimension.
type Store struct {
	City    string
	Address string
}

// MonthBucket is the number of sandwiches ordered in one calendar month.
type MonthBucket struct {
	Month       string
	MonthNumber int
	Year        int
	Sandwiches  int64
}

// Report is the consolidated analytics for one customer.
type Report struct {
	CustomerKey string
	Favorite    Product
	Totals      Totals
	// FavoriteMethod is empty when no method could be ranked.
	FavoriteMethod string
	FavoriteStore  *Store
	// Timeline is ordered from the most recent month backwards.
	Timeline []MonthBucket
}

// Queries runs report statements against one warehouse session. Methods
// return zero values (nil, "" or an empty slice) when nothing matches.
type Queries interface {
	FavoriteProduct(ctx context.Context, customerKey string) (*Product, error)
	Totals(ctx context.Context, customerKey string) (Totals, error)
	FavoriteMethod(ctx context.Context, customerKey string) (string, error)
	FavoriteStore(ctx context.Context, customerKey string) (*Store, error)
	Timeline(ctx context.Context, customerKey string, months int) ([]MonthBucket, error)
}

// Source opens a warehouse session for the duration of fn. The session is
// released when fn returns, whatever the outcome.
type Source interface {
	Session(ctx context.Context, op string, fn func(ctx context.Context, q Queries) error) error
}
