package sandwich

import "context"

// Detail is a free-form sandwich description attached to a local user.
type Detail struct {
	ID          int64
	Name        string
	Description string
}

// Repository lists sandwich detail rows for a local user.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]Detail, error)
}
