package repository

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
)

const (
	findUserByNameSQL = `SELECT id, first_name, last_name, created_at
		FROM users WHERE first_name = $1 AND last_name = $2`

	findUserByIDSQL = `SELECT id, first_name, last_name, created_at
		FROM users WHERE id = $1`

	createUserSQL = `INSERT INTO users (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, first_name, last_name, created_at`

	upsertUserSQL = `INSERT INTO users (first_name, last_name)
		VALUES ($1, $2)
		ON CONFLICT (first_name, last_name) DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id, first_name, last_name, created_at`
)

var _ user.Repository = (*UserRepository)(nil)

// UserRepository implements user.Repository backed by PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a UserRepository that uses the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByName looks up a user by exact first and last name.
// Returns user.ErrNotFound when no such user exists.
func (r *UserRepository) FindByName(ctx context.Context, firstName, lastName string) (*user.User, error) {
	rows, err := r.pool.Query(ctx, findUserByNameSQL, firstName, lastName)
	if err != nil {
		return nil, errors.Wrapf(err, "find user %q %q", firstName, lastName)
	}
	return collectUser(rows)
}

// FindByID looks up a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	rows, err := r.pool.Query(ctx, findUserByIDSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "find user %d", id)
	}
	return collectUser(rows)
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Create inserts a new user. Returns user.ErrExists when the name is taken.
func (r *UserRepository) Create(ctx context.Context, firstName, lastName string) (*user.User, error) {
	rows, err := r.pool.Query(ctx, createUserSQL, firstName, lastName)
	if err != nil {
		return nil, errors.Wrapf(err, "create user %q %q", firstName, lastName)
	}
	u, err := collectUser(rows)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, user.ErrExists
		}
		return nil, err
	}
	return u, nil
}

// Upsert inserts the user unless one with the same name exists and returns
// the stored row either way.
func (r *UserRepository) Upsert(ctx context.Context, firstName, lastName string) (*user.User, error) {
	rows, err := r.pool.Query(ctx, upsertUserSQL, firstName, lastName)
	if err != nil {
		return nil, errors.Wrapf(err, "upsert user %q %q", firstName, lastName)
	}
	return collectUser(rows)
}

func collectUser(rows pgx.Rows) (*user.User, error) {
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, errors.Wrap(err, "scan user")
	}
	return &u, nil
}

func scanUser(row pgx.CollectableRow) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.CreatedAt)
	return u, err
}
