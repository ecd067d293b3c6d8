package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// CustomerTable is the customer dimension checked by CheckCustomerTable.
const CustomerTable = "DIM_CUSTOMER"

// CustomerColumns are the columns login and reporting read from CustomerTable.
var CustomerColumns = []string{"CUSTOMERKEY", "FIRSTNAME", "LASTNAME", "PHONENUMBER"}

// Column describes one table column.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// Field is a named value of a sample row. Rows keep column order.
type Field struct {
	Name  string
	Value any
}

// Row is one sampled table row.
type Row []Field

// Table is a table with its columns and a few sample rows.
type Table struct {
	Name    string
	Columns []Column
	Sample  []Row
	// ColumnsError is set when the table was listed but its columns were not.
	ColumnsError string
	// SampleError is set when the table could be listed but not read.
	SampleError string
}

// Messages reported in place of driver errors for tables that could not be
// described. The driver error is logged.
const (
	ColumnsUnavailable = "columns could not be listed"
	SampleUnavailable  = "sample rows could not be read"
)

// Schema groups the tables of one warehouse schema.
type Schema struct {
	Name   string
	Tables []Table
}

// Inventory is a dump of everything visible in the configured database.
type Inventory struct {
	Dialect  string
	Database string
	Schemas  []Schema
}

// TableCheck is the result of validating the customer dimension.
type TableCheck struct {
	Schema   string
	Table    string
	Exists   bool
	Columns  []Column
	Missing  []string
	RowCount int64
}

// Version returns the warehouse engine version.
func (d *DB) Version(ctx context.Context) (string, error) {
	var v string
	err := d.Do(ctx, "version", func(ctx context.Context, q Querier) (err error) {
		v, err = d.dialect.version(ctx, q)
		return err
	})
	return v, err
}

// Inventory lists every schema, table and column with up to sampleRows rows
// per table. Tables that cannot be described or sampled are reported, not
// skipped.
func (d *DB) Inventory(ctx context.Context, sampleRows int) (*Inventory, error) {
	inv := &Inventory{Dialect: d.dialect.name(), Database: d.database}
	err := d.Do(ctx, "inspect_tables", func(ctx context.Context, q Querier) error {
		schemas, err := d.dialect.schemas(ctx, q)
		if err != nil {
			return err
		}
		for _, schema := range schemas {
			s := Schema{Name: schema}
			tables, err := d.dialect.tables(ctx, q, schema)
			if err != nil {
				return errors.Wrapf(err, "schema %s", schema)
			}
			for _, name := range tables {
				t := Table{Name: name}
				lg := zctx.From(ctx).With(zap.String("schema", schema), zap.String("table", name))
				if t.Columns, err = d.dialect.columns(ctx, q, schema, name); err != nil {
					lg.Warn("List columns", zap.Error(err))
					t.ColumnsError = ColumnsUnavailable
				}
				if sampleRows > 0 {
					sample, err := d.sample(ctx, q, schema, name, sampleRows)
					if err != nil {
						lg.Warn("Sample table", zap.Error(err))
						t.SampleError = SampleUnavailable
					}
					t.Sample = sample
				}
				s.Tables = append(s.Tables, t)
			}
			inv.Schemas = append(inv.Schemas, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (d *DB) sample(ctx context.Context, q Querier, schema, table string, limit int) ([]Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d", d.dialect.qualify(schema, table), limit)
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, newQueryError("sample "+table, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, newQueryError("sample "+table, err)
	}

	out := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		targets := make([]any, len(cols))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, newQueryError("sample "+table, err)
		}
		row := make(Row, len(cols))
		for i, name := range cols {
			row[i] = Field{Name: name, Value: plainValue(values[i])}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, newQueryError("sample "+table, err)
	}
	return out, nil
}

// plainValue turns raw driver bytes into text so values encode readably.
func plainValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// CheckCustomerTable reports whether the customer dimension exists in the
// configured schema, which expected columns it lacks and how many rows it has.
func (d *DB) CheckCustomerTable(ctx context.Context) (*TableCheck, error) {
	check := &TableCheck{Schema: d.schema, Table: CustomerTable}
	err := d.Do(ctx, "check_customer_table", func(ctx context.Context, q Querier) error {
		cols, err := d.dialect.columns(ctx, q, d.schema, CustomerTable)
		if err != nil {
			return err
		}
		check.Columns = cols
		check.Exists = len(cols) > 0
		check.Missing = missingColumns(cols, CustomerColumns)
		if !check.Exists {
			return nil
		}

		query := "SELECT COUNT(*) FROM " + d.dialect.qualify(d.schema, CustomerTable)
		if err := q.QueryRowContext(ctx, query).Scan(&check.RowCount); err != nil {
			return newQueryError("count customers", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return check, nil
}

func missingColumns(have []Column, want []string) []string {
	present := make(map[string]struct{}, len(have))
	for _, c := range have {
		present[strings.ToUpper(c.Name)] = struct{}{}
	}
	missing := []string{}
	for _, name := range want {
		if _, ok := present[strings.ToUpper(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// ApplyScript executes a multi-statement SQL script outside of a session.
// It is meant for provisioning the sqlite development warehouse.
func (d *DB) ApplyScript(ctx context.Context, script string) error {
	if d.dialect.name() != DriverSQLite {
		return errors.Errorf("scripts are only applied to %s warehouses", DriverSQLite)
	}
	if _, err := d.sql.ExecContext(ctx, script); err != nil {
		return newQueryError("apply script", err)
	}
	return nil
}
