package warehouse

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/internal/domain/customer"
)

const findCustomerByPhoneSQL = `SELECT CUSTOMERKEY, FIRSTNAME, LASTNAME, PHONENUMBER
	FROM DIM_CUSTOMER
	WHERE PHONENUMBER = ?
	LIMIT 1`

// CustomerRepository resolves customers from the customer dimension.
type CustomerRepository struct {
	db *DB
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindByPhone returns the first customer with exactly this phone number.
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.Do(ctx, "find_customer", func(ctx context.Context, q Querier) error {
		err := q.QueryRowContext(ctx, findCustomerByPhoneSQL, phone).
			Scan(&c.Key, &c.FirstName, &c.LastName, &c.PhoneNumber)
		if errors.Is(err, sql.ErrNoRows) {
			return customer.ErrNotFound
		}
		if err != nil {
			return newQueryError("find customer by phone", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
