package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
)

const noOrdersMessage = "No orders found for this customer"

// FavoriteSandwich returns the product the customer ordered the most units of.
func (h *Handler) FavoriteSandwich(ctx context.Context, params oas.FavoriteSandwichParams) (*oas.FavoriteSandwich, error) {
	fav, err := h.reports.FavoriteSandwich(ctx, params.CustomerKey)
	if errors.Is(err, report.ErrNoOrders) {
		return nil, notFound(noOrdersMessage)
	}
	if err != nil {
		return nil, err
	}
	return &oas.FavoriteSandwich{ProductName: fav.Name, TotalOrdered: fav.TimesOrdered}, nil
}

// SandwichReport returns the consolidated customer report.
func (h *Handler) SandwichReport(ctx context.Context, params oas.SandwichReportParams) (*oas.SandwichReport, error) {
	rep, err := h.reports.Report(ctx, params.CustomerKey)
	if errors.Is(err, report.ErrNoOrders) {
		return nil, notFound(noOrdersMessage)
	}
	if err != nil {
		return nil, err
	}
	return sandwichReport(rep), nil
}
