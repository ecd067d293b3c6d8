package customer

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when no warehouse customer matches the lookup.
var ErrNotFound = errors.New("customer not found")

// Customer is a row of the warehouse customer dimension.
type Customer struct {
	// Key is the warehouse surrogate key. It is kept as text because callers
	// only ever pass it back to the warehouse.
	Key         string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Repository resolves customers from the warehouse.
type Repository interface {
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
}
