// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CheckCustomerTable implements checkCustomerTable operation.
	//
	// Validate the customer dimension.
	//
	// GET /check-customer-table/
	CheckCustomerTable(ctx context.Context) (*TableCheck, error)
	// FavoriteSandwich implements favoriteSandwich operation.
	//
	// Product the customer ordered the most units of.
	//
	// GET /customer/{customer_key}/favorite-sandwich/
	FavoriteSandwich(ctx context.Context, params FavoriteSandwichParams) (*FavoriteSandwich, error)
	// Hello implements hello operation.
	//
	// Greeting.
	//
	// GET /hello/
	Hello(ctx context.Context) (*Message, error)
	// InspectTables implements inspectTables operation.
	//
	// Dump schemas, tables and columns with sample rows.
	//
	// GET /inspect-tables/
	InspectTables(ctx context.Context) (*Inventory, error)
	// Login implements login operation.
	//
	// A phone number is looked up in the warehouse customer dimension. Without
	// one, first and last name are looked up in the local user store. There is
	// no password or session.
	//
	// POST /login/
	Login(ctx context.Context, req OptLoginRequest) (*LoginResponse, error)
	// SandwichDetails implements sandwichDetails operation.
	//
	// Local user with their free-form sandwich rows.
	//
	// GET /sandwich-details/{user_id}/
	SandwichDetails(ctx context.Context, params SandwichDetailsParams) (*SandwichDetailsResponse, error)
	// SandwichReport implements sandwichReport operation.
	//
	// Consolidated customer report.
	//
	// GET /customer/{customer_key}/sandwich-report/
	SandwichReport(ctx context.Context, params SandwichReportParams) (*SandwichReport, error)
	// TestSnowflake implements testSnowflake operation.
	//
	// Open a warehouse session and report the engine version.
	//
	// GET /test-snowflake/
	TestSnowflake(ctx context.Context) (*VersionResponse, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h Handler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		baseServer: s,
	}, nil
}
