package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
)

// SandwichDetails returns a local user together with the free-form sandwich
// rows stored for them in the warehouse.
func (h *Handler) SandwichDetails(ctx context.Context, params oas.SandwichDetailsParams) (*oas.SandwichDetailsResponse, error) {
	// Ids are BIGSERIAL, so nothing below 1 can exist.
	if params.UserID <= 0 {
		return nil, notFound("User not found")
	}

	u, err := h.users.FindByID(ctx, params.UserID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, notFound("User not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	details, err := h.sandwiches.ListByCustomer(ctx, u.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list sandwich details")
	}
	return sandwichDetails(u, details), nil
}
