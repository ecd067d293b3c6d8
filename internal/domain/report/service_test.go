package report

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockQueries struct {
	favorite *Product
	totals   Totals
	method   string
	store    *Store
	timeline []MonthBucket

	favoriteErr error
	totalsErr   error
	timelineErr error

	calls []string
}

func (m *mockQueries) FavoriteProduct(_ context.Context, _ string) (*Product, error) {
	m.calls = append(m.calls, "favorite")
	return m.favorite, m.favoriteErr
}

func (m *mockQueries) Totals(_ context.Context, _ string) (Totals, error) {
	m.calls = append(m.calls, "totals")
	return m.totals, m.totalsErr
}

func (m *mockQueries) FavoriteMethod(_ context.Context, _ string) (string, error) {
	m.calls = append(m.calls, "method")
	return m.method, nil
}

func (m *mockQueries) FavoriteStore(_ context.Context, _ string) (*Store, error) {
	m.calls = append(m.calls, "store")
	return m.store, nil
}

func (m *mockQueries) Timeline(_ context.Context, _ string, months int) ([]MonthBucket, error) {
	m.calls = append(m.calls, "timeline")
	if months != TimelineMonths {
		return nil, errors.Errorf("unexpected months %d", months)
	}
	return m.timeline, m.timelineErr
}

// mockSource counts opened and released sessions.
type mockSource struct {
	queries  *mockQueries
	opened   int
	released int
	ops      []string
}

func (m *mockSource) Session(ctx context.Context, op string, fn func(context.Context, Queries) error) error {
	m.opened++
	m.ops = append(m.ops, op)
	defer func() { m.released++ }()
	return fn(ctx, m.queries)
}

// --- Tests ---

func TestFavoriteSandwich(t *testing.T) {
	src := &mockSource{queries: &mockQueries{
		favorite: &Product{Name: "Turkey", TimesOrdered: 5},
	}}
	svc := NewService(src)

	fav, err := svc.FavoriteSandwich(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "Turkey", fav.Name)
	assert.Equal(t, int64(5), fav.TimesOrdered)
	assert.Equal(t, 1, src.opened)
	assert.Equal(t, 1, src.released)
	assert.Equal(t, []string{"favorite_sandwich"}, src.ops)
}

func TestFavoriteSandwich_NoOrders(t *testing.T) {
	src := &mockSource{queries: &mockQueries{}}
	svc := NewService(src)

	_, err := svc.FavoriteSandwich(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrNoOrders)
	assert.Equal(t, 1, src.released)
}

func TestFavoriteSandwich_QueryError(t *testing.T) {
	src := &mockSource{queries: &mockQueries{favoriteErr: errors.New("boom")}}
	svc := NewService(src)

	_, err := svc.FavoriteSandwich(context.Background(), "C1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "favorite product")
	assert.Equal(t, 1, src.released)
}

func TestReport(t *testing.T) {
	calories := int64(540)
	q := &mockQueries{
		favorite: &Product{Name: "Turkey Club", Calories: &calories, TimesOrdered: 9},
		totals: Totals{
			Orders:     7,
			Sandwiches: 14,
			Spent:      decimal.RequireFromString("118.25"),
		},
		method: "Online",
		store:  &Store{City: "Springfield", Address: "742 Evergreen Terrace"},
		timeline: []MonthBucket{
			{Month: "January", MonthNumber: 1, Year: 2025, Sandwiches: 1},
			{Month: "November", MonthNumber: 11, Year: 2024, Sandwiches: 2},
		},
	}
	src := &mockSource{queries: q}
	svc := NewService(src)

	r, err := svc.Report(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", r.CustomerKey)
	assert.Equal(t, "Turkey Club", r.Favorite.Name)
	require.NotNil(t, r.Favorite.Calories)
	assert.Equal(t, int64(540), *r.Favorite.Calories)
	assert.Equal(t, int64(7), r.Totals.Orders)
	assert.True(t, decimal.RequireFromString("118.25").Equal(r.Totals.Spent))
	assert.Equal(t, "Online", r.FavoriteMethod)
	assert.Equal(t, "Springfield", r.FavoriteStore.City)
	assert.Len(t, r.Timeline, 2)

	// All five statements run serially on one session.
	assert.Equal(t, []string{"favorite", "totals", "method", "store", "timeline"}, q.calls)
	assert.Equal(t, 1, src.opened)
	assert.Equal(t, 1, src.released)
}

func TestReport_NoOrdersStopsAfterFavorite(t *testing.T) {
	q := &mockQueries{}
	src := &mockSource{queries: q}
	svc := NewService(src)

	r, err := svc.Report(context.Background(), "C9")
	require.ErrorIs(t, err, ErrNoOrders)
	assert.Nil(t, r)
	assert.Equal(t, []string{"favorite"}, q.calls)
	assert.Equal(t, 1, src.released)
}

func TestReport_EmptySectionsUseDefaults(t *testing.T) {
	src := &mockSource{queries: &mockQueries{
		favorite: &Product{Name: "Ham", TimesOrdered: 1},
	}}
	svc := NewService(src)

	r, err := svc.Report(context.Background(), "C2")
	require.NoError(t, err)
	assert.Empty(t, r.FavoriteMethod)
	assert.Nil(t, r.FavoriteStore)
	assert.NotNil(t, r.Timeline)
	assert.Empty(t, r.Timeline)
	assert.True(t, r.Totals.Spent.IsZero())
}

func TestReport_TimelineCapped(t *testing.T) {
	timeline := make([]MonthBucket, 9)
	for i := range timeline {
		timeline[i] = MonthBucket{MonthNumber: 12 - i, Year: 2024, Sandwiches: 1}
	}
	src := &mockSource{queries: &mockQueries{
		favorite: &Product{Name: "Ham", TimesOrdered: 1},
		timeline: timeline,
	}}
	svc := NewService(src)

	r, err := svc.Report(context.Background(), "C3")
	require.NoError(t, err)
	assert.Len(t, r.Timeline, TimelineMonths)
	assert.Equal(t, 12, r.Timeline[0].MonthNumber)
}

func TestReport_SectionErrorReleasesSession(t *testing.T) {
	tests := []struct {
		name    string
		queries *mockQueries
		want    string
	}{
		{
			name: "totals",
			queries: &mockQueries{
				favorite:  &Product{Name: "Ham", TimesOrdered: 1},
				totalsErr: errors.New("warehouse down"),
			},
			want: "totals",
		},
		{
			name: "timeline",
			queries: &mockQueries{
				favorite:    &Product{Name: "Ham", TimesOrdered: 1},
				timelineErr: errors.New("bad sql"),
			},
			want: "timeline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSource{queries: tt.queries}
			svc := NewService(src)

			_, err := svc.Report(context.Background(), "C1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, 1, src.opened)
			assert.Equal(t, 1, src.released)
		})
	}
}
