package report

import (
	"context"

	"github.com/go-faster/errors"
)

// Service assembles customer reports from warehouse queries.
type Service struct {
	source Source
}

// NewService creates a report Service reading from source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// FavoriteSandwich returns the product the customer ordered the most units of.
func (s *Service) FavoriteSandwich(ctx context.Context, customerKey string) (*Product, error) {
	var fav *Product
	err := s.source.Session(ctx, "favorite_sandwich", func(ctx context.Context, q Queries) error {
		p, err := q.FavoriteProduct(ctx, customerKey)
		if err != nil {
			return errors.Wrap(err, "favorite product")
		}
		fav = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fav == nil {
		return nil, ErrNoOrders
	}
	return fav, nil
}

// Report runs the five report queries one after another on a single session
// and merges their results. Only a missing favorite product fails the report;
// the other sections fall back to their zero values.
func (s *Service) Report(ctx context.Context, customerKey string) (*Report, error) {
	r := &Report{CustomerKey: customerKey}
	err := s.source.Session(ctx, "sandwich_report", func(ctx context.Context, q Queries) error {
		fav, err := q.FavoriteProduct(ctx, customerKey)
		if err != nil {
			return errors.Wrap(err, "favorite product")
		}
		if fav == nil {
			return ErrNoOrders
		}
		r.Favorite = *fav

		if r.Totals, err = q.Totals(ctx, customerKey); err != nil {
			return errors.Wrap(err, "totals")
		}
		if r.FavoriteMethod, err = q.FavoriteMethod(ctx, customerKey); err != nil {
			return errors.Wrap(err, "favorite method")
		}
		if r.FavoriteStore, err = q.FavoriteStore(ctx, customerKey); err != nil {
			return errors.Wrap(err, "favorite store")
		}
		if r.Timeline, err = q.Timeline(ctx, customerKey, TimelineMonths); err != nil {
			return errors.Wrap(err, "timeline")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(r.Timeline) > TimelineMonths {
		r.Timeline = r.Timeline[:TimelineMonths]
	}
	if r.Timeline == nil {
		r.Timeline = []MonthBucket{}
	}
	return r, nil
}
