package handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/customer"
	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
)

const loginMessage = "Login successful"

// Login resolves the caller's identity. A phone number is looked up in the
// warehouse customer dimension; a first and last name fall back to the local
// user store. There is no password or session.
func (h *Handler) Login(ctx context.Context, req oas.OptLoginRequest) (*oas.LoginResponse, error) {
	body, _ := req.Get()
	phone := trimmed(body.PhoneNumber)
	first, last := trimmed(body.FirstName), trimmed(body.LastName)

	switch {
	case phone != "":
		c, err := h.customers.FindByPhone(ctx, phone)
		if errors.Is(err, customer.ErrNotFound) {
			return nil, notFound("Phone number not found in records")
		}
		if err != nil {
			return nil, errors.Wrap(err, "find customer")
		}
		return &oas.LoginResponse{Message: loginMessage, User: customerLogin(c)}, nil

	case first != "" && last != "":
		u, err := h.users.FindByName(ctx, first, last)
		if errors.Is(err, user.ErrNotFound) {
			return nil, notFound("User not found")
		}
		if err != nil {
			return nil, errors.Wrap(err, "find user")
		}
		return &oas.LoginResponse{Message: loginMessage, User: userLogin(u)}, nil

	default:
		return nil, badRequest("Phone number is required")
	}
}

// trimmed returns the trimmed value, treating null and absent as empty.
func trimmed(v oas.OptNilString) string {
	s, _ := v.Get()
	return strings.TrimSpace(s)
}
