// Package db provides embedded database schema and migration files.
package db

import _ "embed"

// Schema contains the DDL statements for the local user store.
//
//go:embed migrations/001_schema.sql
var Schema string

// WarehouseSchema creates the star schema in an sqlite development warehouse.
//
//go:embed warehouse/star_schema.sql
var WarehouseSchema string

// WarehouseSample inserts a small set of customers and orders into the
// development warehouse.
//
//go:embed warehouse/sample_data.sql
var WarehouseSample string
