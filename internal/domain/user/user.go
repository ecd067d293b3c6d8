package user

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when no local user matches the lookup.
var ErrNotFound = errors.New("user not found")

// ErrExists is returned when creating a user whose name is already taken.
var ErrExists = errors.New("user already exists")

// User is a locally registered user. It predates phone-number login and is
// still used to resolve legacy sandwich detail rows.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// Repository defines lookups against the local user store.
type Repository interface {
	FindByName(ctx context.Context, firstName, lastName string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
