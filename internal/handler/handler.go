// Package handler implements the generated Sandwich Unwrapped API server
// interface on top of the domain services.
package handler

import (
	"context"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/customer"
	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
	"github.com/xenking/sandwich-unwrapped/internal/domain/sandwich"
	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Catalog exposes warehouse introspection for the diagnostic endpoints.
type Catalog interface {
	Version(ctx context.Context) (string, error)
	CheckCustomerTable(ctx context.Context) (*warehouse.TableCheck, error)
	Inventory(ctx context.Context, sampleRows int) (*warehouse.Inventory, error)
}

// Config holds non-dependency settings of the Handler.
type Config struct {
	// SampleRows is how many rows per table the inspect endpoint returns.
	SampleRows int
}

// Handler implements the ogen-generated Handler interface. Errors returned by
// the endpoint methods are mapped to responses by NewError.
type Handler struct {
	oas.UnimplementedHandler

	users      user.Repository
	customers  customer.Repository
	sandwiches sandwich.Repository
	reports    *report.Service
	catalog    Catalog
	sampleRows int
}

// New constructs a Handler with its domain dependencies.
func New(
	cfg Config,
	users user.Repository,
	customers customer.Repository,
	sandwiches sandwich.Repository,
	reports *report.Service,
	catalog Catalog,
) *Handler {
	return &Handler{
		users:      users,
		customers:  customers,
		sandwiches: sandwiches,
		reports:    reports,
		catalog:    catalog,
		sampleRows: cfg.SampleRows,
	}
}

// Hello is the greeting kept from the first API version.
func (h *Handler) Hello(context.Context) (*oas.Message, error) {
	return &oas.Message{Message: "Hello, World!"}, nil
}
