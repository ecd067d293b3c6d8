package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
)

// TestSnowflake opens a warehouse session and reports the engine version.
func (h *Handler) TestSnowflake(ctx context.Context) (*oas.VersionResponse, error) {
	version, err := h.catalog.Version(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "warehouse version")
	}
	return &oas.VersionResponse{Message: "Successfully connected to Snowflake", Version: version}, nil
}

// CheckCustomerTable reports whether the customer dimension is usable.
func (h *Handler) CheckCustomerTable(ctx context.Context) (*oas.TableCheck, error) {
	check, err := h.catalog.CheckCustomerTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "check customer table")
	}
	return tableCheck(check), nil
}

// InspectTables dumps every schema, table and column with a few sample rows.
func (h *Handler) InspectTables(ctx context.Context) (*oas.Inventory, error) {
	inv, err := h.catalog.Inventory(ctx, h.sampleRows)
	if err != nil {
		return nil, errors.Wrap(err, "inventory")
	}
	return inventory(inv), nil
}
