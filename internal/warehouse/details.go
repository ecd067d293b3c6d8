package warehouse

import (
	"context"
	"database/sql"

	"github.com/xenking/sandwich-unwrapped/internal/domain/sandwich"
)

const listSandwichDetailsSQL = `SELECT ID, NAME, DESCRIPTION
	FROM SANDWICH_DETAILS
	WHERE CUSTOMER_ID = ?
	ORDER BY ID`

// SandwichRepository lists free-form sandwich detail rows.
type SandwichRepository struct {
	db *DB
}

var _ sandwich.Repository = (*SandwichRepository)(nil)

func NewSandwichRepository(db *DB) *SandwichRepository {
	return &SandwichRepository{db: db}
}

// ListByCustomer returns every detail row of the customer, possibly none.
func (r *SandwichRepository) ListByCustomer(ctx context.Context, customerID int64) ([]sandwich.Detail, error) {
	var details []sandwich.Detail
	err := r.db.Do(ctx, "sandwich_details", func(ctx context.Context, q Querier) error {
		rows, err := q.QueryContext(ctx, listSandwichDetailsSQL, customerID)
		if err != nil {
			return newQueryError("list sandwich details", err)
		}
		details, err = collectRows(rows, "list sandwich details", func(rows *sql.Rows) (sandwich.Detail, error) {
			var (
				d    sandwich.Detail
				desc sql.NullString
			)
			if err := rows.Scan(&d.ID, &d.Name, &desc); err != nil {
				return d, err
			}
			d.Description = desc.String
			return d, nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []sandwich.Detail{}
	}
	return details, nil
}
