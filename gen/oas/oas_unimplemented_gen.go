// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CheckCustomerTable implements checkCustomerTable operation.
//
// Validate the customer dimension.
//
// GET /check-customer-table/
func (UnimplementedHandler) CheckCustomerTable(ctx context.Context) (r *TableCheck, _ error) {
	return r, ht.ErrNotImplemented
}

// FavoriteSandwich implements favoriteSandwich operation.
//
// Product the customer ordered the most units of.
//
// GET /customer/{customer_key}/favorite-sandwich/
func (UnimplementedHandler) FavoriteSandwich(ctx context.Context, params FavoriteSandwichParams) (r *FavoriteSandwich, _ error) {
	return r, ht.ErrNotImplemented
}

// Hello implements hello operation.
//
// Greeting.
//
// GET /hello/
func (UnimplementedHandler) Hello(ctx context.Context) (r *Message, _ error) {
	return r, ht.ErrNotImplemented
}

// InspectTables implements inspectTables operation.
//
// Dump schemas, tables and columns with sample rows.
//
// GET /inspect-tables/
func (UnimplementedHandler) InspectTables(ctx context.Context) (r *Inventory, _ error) {
	return r, ht.ErrNotImplemented
}

// Login implements login operation.
//
// A phone number is looked up in the warehouse customer dimension. Without
// one, first and last name are looked up in the local user store. There is
// no password or session.
//
// POST /login/
func (UnimplementedHandler) Login(ctx context.Context, req OptLoginRequest) (r *LoginResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// SandwichDetails implements sandwichDetails operation.
//
// Local user with their free-form sandwich rows.
//
// GET /sandwich-details/{user_id}/
func (UnimplementedHandler) SandwichDetails(ctx context.Context, params SandwichDetailsParams) (r *SandwichDetailsResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// SandwichReport implements sandwichReport operation.
//
// Consolidated customer report.
//
// GET /customer/{customer_key}/sandwich-report/
func (UnimplementedHandler) SandwichReport(ctx context.Context, params SandwichReportParams) (r *SandwichReport, _ error) {
	return r, ht.ErrNotImplemented
}

// TestSnowflake implements testSnowflake operation.
//
// Open a warehouse session and report the engine version.
//
// GET /test-snowflake/
func (UnimplementedHandler) TestSnowflake(ctx context.Context) (r *VersionResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
