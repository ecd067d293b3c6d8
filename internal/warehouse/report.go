package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
)

// Ties are broken by the lowest surrogate key so that repeated requests
// rank the same row first.
const (
	favoriteProductSQL = `SELECT p.PRODUCTNAME, p.CALORIES, SUM(f.QUANTITY) AS TOTAL_ORDERED
	FROM FACT_ORDERS f
	JOIN DIM_PRODUCT p ON p.PRODUCTKEY = f.PRODUCTKEY
	WHERE f.CUSTOMERKEY = ?
	GROUP BY p.PRODUCTKEY, p.PRODUCTNAME, p.CALORIES
	ORDER BY TOTAL_ORDERED DESC, p.PRODUCTKEY ASC
	LIMIT 1`

	totalsSQL = `SELECT COUNT(DISTINCT f.DATEKEY),
		COALESCE(SUM(f.QUANTITY), 0),
		COALESCE(SUM(f.QUANTITY * f.UNITPRICE), 0)
	FROM FACT_ORDERS f
	WHERE f.CUSTOMERKEY = ?`

	favoriteMethodSQL = `SELECT m.METHODNAME, COUNT(*) AS TIMES_USED
	FROM FACT_ORDERS f
	JOIN DIM_ORDERMETHOD m ON m.ORDERMETHODKEY = f.ORDERMETHODKEY
	WHERE f.CUSTOMERKEY = ?
	GROUP BY m.ORDERMETHODKEY, m.METHODNAME
	ORDER BY TIMES_USED DESC, m.ORDERMETHODKEY ASC
	LIMIT 1`

	favoriteStoreSQL = `SELECT s.CITY, s.ADDRESS, COUNT(*) AS VISITS
	FROM FACT_ORDERS f
	JOIN DIM_STORE s ON s.STOREKEY = f.STOREKEY
	WHERE f.CUSTOMERKEY = ?
	GROUP BY s.STOREKEY, s.CITY, s.ADDRESS
	ORDER BY VISITS DESC, s.STOREKEY ASC
	LIMIT 1`

	// The row limit is formatted in from an int.
	timelineSQL = `SELECT d.MONTHNAME, d.MONTHNUMBER, d.CALENDARYEAR, SUM(f.QUANTITY) AS SANDWICHES
	FROM FACT_ORDERS f
	JOIN DIM_DATE d ON d.DATEKEY = f.DATEKEY
	WHERE f.CUSTOMERKEY = ?
	GROUP BY d.CALENDARYEAR, d.MONTHNUMBER, d.MONTHNAME
	ORDER BY d.CALENDARYEAR DESC, d.MONTHNUMBER DESC
	LIMIT %d`
)

// ReportSource runs report queries on warehouse sessions.
type ReportSource struct {
	db *DB
}

var _ report.Source = (*ReportSource)(nil)

func NewReportSource(db *DB) *ReportSource {
	return &ReportSource{db: db}
}

// Session implements report.Source.
func (s *ReportSource) Session(ctx context.Context, op string, fn func(ctx context.Context, q report.Queries) error) error {
	return s.db.Do(ctx, op, func(ctx context.Context, q Querier) error {
		return fn(ctx, reportQueries{q: q})
	})
}

type reportQueries struct {
	q Querier
}

var _ report.Queries = reportQueries{}

func (r reportQueries) FavoriteProduct(ctx context.Context, customerKey string) (*report.Product, error) {
	var (
		p        report.Product
		calories sql.NullInt64
	)
	err := r.q.QueryRowContext(ctx, favoriteProductSQL, customerKey).Scan(&p.Name, &calories, &p.TimesOrdered)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, newQueryError("favorite product", err)
	}
	if calories.Valid {
		p.Calories = &calories.Int64
	}
	return &p, nil
}

func (r reportQueries) Totals(ctx context.Context, customerKey string) (report.Totals, error) {
	var t report.Totals
	err := r.q.QueryRowContext(ctx, totalsSQL, customerKey).Scan(&t.Orders, &t.Sandwiches, &t.Spent)
	if err != nil {
		return report.Totals{}, newQueryError("totals", err)
	}
	t.Spent = t.Spent.Round(2)
	return t, nil
}

func (r reportQueries) FavoriteMethod(ctx context.Context, customerKey string) (string, error) {
	var (
		method string
		used   int64
	)
	err := r.q.QueryRowContext(ctx, favoriteMethodSQL, customerKey).Scan(&method, &used)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", newQueryError("favorite method", err)
	}
	return method, nil
}

func (r reportQueries) FavoriteStore(ctx context.Context, customerKey string) (*report.Store, error) {
	var (
		s      report.Store
		visits int64
	)
	err := r.q.QueryRowContext(ctx, favoriteStoreSQL, customerKey).Scan(&s.City, &s.Address, &visits)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, newQueryError("favorite store", err)
	}
	return &s, nil
}

func (r reportQueries) Timeline(ctx context.Context, customerKey string, months int) ([]report.MonthBucket, error) {
	if months <= 0 {
		return []report.MonthBucket{}, nil
	}
	rows, err := r.q.QueryContext(ctx, fmt.Sprintf(timelineSQL, months), customerKey)
	if err != nil {
		return nil, newQueryError("timeline", err)
	}
	return collectRows(rows, "timeline", func(rows *sql.Rows) (report.MonthBucket, error) {
		var b report.MonthBucket
		err := rows.Scan(&b.Month, &b.MonthNumber, &b.Year, &b.Sandwiches)
		return b, err
	})
}
