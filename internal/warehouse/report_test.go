package warehouse

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/sandwich-unwrapped/db"
	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
)

func TestReportSource_FullReport(t *testing.T) {
	wh, counter := openSeeded(t)
	svc := report.NewService(NewReportSource(wh))

	r, err := svc.Report(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Turkey Club", r.Favorite.Name)
	assert.Equal(t, int64(9), r.Favorite.TimesOrdered)
	require.NotNil(t, r.Favorite.Calories)
	assert.Equal(t, int64(540), *r.Favorite.Calories)

	assert.Equal(t, int64(9), r.Totals.Orders)
	assert.Equal(t, int64(14), r.Totals.Sandwiches)
	assert.True(t, decimal.RequireFromString("115").Equal(r.Totals.Spent), r.Totals.Spent.String())

	assert.Equal(t, "Online", r.FavoriteMethod)
	require.NotNil(t, r.FavoriteStore)
	assert.Equal(t, "Springfield", r.FavoriteStore.City)
	assert.Equal(t, "742 Evergreen Terrace", r.FavoriteStore.Address)

	require.Len(t, r.Timeline, report.TimelineMonths)
	assert.Equal(t, report.MonthBucket{Month: "January", MonthNumber: 1, Year: 2025, Sandwiches: 1}, r.Timeline[0])
	assert.Equal(t, report.MonthBucket{Month: "November", MonthNumber: 11, Year: 2024, Sandwiches: 2}, r.Timeline[1])
	assert.Equal(t, report.MonthBucket{Month: "April", MonthNumber: 4, Year: 2024, Sandwiches: 1}, r.Timeline[5])
	for i := 1; i < len(r.Timeline); i++ {
		prev, cur := r.Timeline[i-1], r.Timeline[i]
		assert.True(t, prev.Year > cur.Year || (prev.Year == cur.Year && prev.MonthNumber > cur.MonthNumber),
			"timeline must be strictly descending")
	}

	assert.Equal(t, int64(1), counter.acquired.Load(), "report must use a single session")
	assertBalanced(t, counter)
}

func TestReportSource_FavoriteSandwich(t *testing.T) {
	wh, counter := openSeeded(t)
	svc := report.NewService(NewReportSource(wh))
	ctx := context.Background()

	fav, err := svc.FavoriteSandwich(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Veggie Delight", fav.Name)
	assert.Equal(t, int64(3), fav.TimesOrdered)

	_, err = svc.FavoriteSandwich(ctx, "3")
	require.ErrorIs(t, err, report.ErrNoOrders)

	_, err = svc.FavoriteSandwich(ctx, "does-not-exist")
	require.ErrorIs(t, err, report.ErrNoOrders)

	assertBalanced(t, counter)
}

func TestReportSource_NoOrders(t *testing.T) {
	wh, counter := openSeeded(t)
	svc := report.NewService(NewReportSource(wh))

	_, err := svc.Report(context.Background(), "3")
	require.ErrorIs(t, err, report.ErrNoOrders)
	assertBalanced(t, counter)
}

func TestReportQueries_Sections(t *testing.T) {
	wh, counter := openSeeded(t)
	ctx := context.Background()

	err := wh.Do(ctx, "sections", func(ctx context.Context, q Querier) error {
		rq := reportQueries{q: q}

		totals, err := rq.Totals(ctx, "3")
		require.NoError(t, err)
		assert.Zero(t, totals.Orders)
		assert.Zero(t, totals.Sandwiches)
		assert.True(t, totals.Spent.IsZero())

		method, err := rq.FavoriteMethod(ctx, "3")
		require.NoError(t, err)
		assert.Empty(t, method)

		store, err := rq.FavoriteStore(ctx, "3")
		require.NoError(t, err)
		assert.Nil(t, store)

		timeline, err := rq.Timeline(ctx, "2", report.TimelineMonths)
		require.NoError(t, err)
		assert.Equal(t, []report.MonthBucket{
			{Month: "January", MonthNumber: 1, Year: 2025, Sandwiches: 1},
			{Month: "March", MonthNumber: 3, Year: 2024, Sandwiches: 2},
		}, timeline)

		timeline, err = rq.Timeline(ctx, "1", 0)
		require.NoError(t, err)
		assert.Empty(t, timeline)

		totals, err = rq.Totals(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), totals.Orders)
		assert.True(t, decimal.RequireFromString("18.5").Equal(totals.Spent), totals.Spent.String())
		return nil
	})
	require.NoError(t, err)
	assertBalanced(t, counter)
}

func TestReportQueries_TieBreakByKey(t *testing.T) {
	wh, _ := openSeeded(t)
	ctx := context.Background()

	// Customer 2 ends up with three units each of products 3 and 2.
	require.NoError(t, wh.ApplyScript(ctx, `INSERT INTO FACT_ORDERS
		(CUSTOMERKEY, PRODUCTKEY, DATEKEY, STOREKEY, ORDERMETHODKEY, QUANTITY, UNITPRICE)
		VALUES (2, 2, 20240115, 1, 2, 3, 7.0)`))

	err := wh.Do(ctx, "tie", func(ctx context.Context, q Querier) error {
		fav, err := reportQueries{q: q}.FavoriteProduct(ctx, "2")
		require.NoError(t, err)
		require.NotNil(t, fav)
		assert.Equal(t, "Ham & Swiss", fav.Name)
		return nil
	})
	require.NoError(t, err)
}

func TestReportQueries_SingleRow(t *testing.T) {
	wh, _ := openSeeded(t)
	ctx := context.Background()

	require.NoError(t, wh.ApplyScript(ctx, `
		INSERT INTO DIM_CUSTOMER VALUES (9, 'Single', 'Row', '555-010-0009');
		INSERT INTO FACT_ORDERS VALUES (9, 4, 20240623, 2, 3, 4, 2.25);`))

	svc := report.NewService(NewReportSource(wh))
	r, err := svc.Report(ctx, "9")
	require.NoError(t, err)

	assert.Equal(t, "Meatball Marinara", r.Favorite.Name)
	assert.Nil(t, r.Favorite.Calories)
	assert.Equal(t, int64(4), r.Favorite.TimesOrdered)
	assert.Equal(t, int64(1), r.Totals.Orders)
	assert.Equal(t, int64(4), r.Totals.Sandwiches)
	assert.True(t, decimal.RequireFromString("9").Equal(r.Totals.Spent))
	assert.Equal(t, "Drive-Thru", r.FavoriteMethod)
	assert.Equal(t, "Shelbyville", r.FavoriteStore.City)
	assert.Equal(t, []report.MonthBucket{{Month: "June", MonthNumber: 6, Year: 2024, Sandwiches: 4}}, r.Timeline)
}

func TestReportQueries_FavoriteSumsQuantity(t *testing.T) {
	wh, _ := openEmpty(t)
	ctx := context.Background()

	require.NoError(t, wh.ApplyScript(ctx, db.WarehouseSchema))
	require.NoError(t, wh.ApplyScript(ctx, `
		INSERT INTO DIM_PRODUCT VALUES (1, 'Turkey', 400), (2, 'Ham', 350);
		INSERT INTO DIM_STORE VALUES (1, 'Springfield', '1 Main St');
		INSERT INTO DIM_ORDERMETHOD VALUES (1, 'In-Store');
		INSERT INTO DIM_DATE VALUES (20240101, '2024-01-01', 1, 'January', 2024);
		INSERT INTO FACT_ORDERS VALUES
			('C1', 1, 20240101, 1, 1, 3, 5.0),
			('C1', 1, 20240101, 1, 1, 2, 5.0),
			('C1', 2, 20240101, 1, 1, 1, 4.0);`))

	svc := report.NewService(NewReportSource(wh))
	fav, err := svc.FavoriteSandwich(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Turkey", fav.Name)
	assert.Equal(t, int64(5), fav.TimesOrdered)
}

func TestReportQueries_TotalsNonDecreasing(t *testing.T) {
	wh, _ := openSeeded(t)
	ctx := context.Background()
	svc := report.NewService(NewReportSource(wh))

	before, err := svc.Report(ctx, "2")
	require.NoError(t, err)

	require.NoError(t, wh.ApplyScript(ctx, `INSERT INTO FACT_ORDERS
		(CUSTOMERKEY, PRODUCTKEY, DATEKEY, STOREKEY, ORDERMETHODKEY, QUANTITY, UNITPRICE)
		VALUES (2, 1, 20240412, 2, 1, 2, 9.5)`))

	after, err := svc.Report(ctx, "2")
	require.NoError(t, err)

	assert.Equal(t, before.Totals.Sandwiches+2, after.Totals.Sandwiches)
	assert.True(t, after.Totals.Spent.Equal(before.Totals.Spent.Add(decimal.NewFromInt(19))),
		"spent %s -> %s", before.Totals.Spent, after.Totals.Spent)
	assert.GreaterOrEqual(t, after.Totals.Orders, before.Totals.Orders)
}
