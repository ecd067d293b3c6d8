package handler

import (
	"fmt"
	"time"

	"github.com/go-faster/jx"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/customer"
	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
	"github.com/xenking/sandwich-unwrapped/internal/domain/sandwich"
	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

func customerLogin(c *customer.Customer) oas.LoginUser {
	return oas.LoginUser{
		CustomerKey: oas.NewOptString(c.Key),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: oas.NewOptString(c.PhoneNumber),
	}
}

func userLogin(u *user.User) oas.LoginUser {
	return oas.LoginUser{
		ID:        oas.NewOptInt64(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func sandwichDetails(u *user.User, details []sandwich.Detail) *oas.SandwichDetailsResponse {
	resp := &oas.SandwichDetailsResponse{
		User:            oas.User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName},
		SandwichDetails: make([]oas.SandwichDetail, 0, len(details)),
	}
	for _, d := range details {
		resp.SandwichDetails = append(resp.SandwichDetails, oas.SandwichDetail{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return resp
}

// sandwichReport converts a report. Missing rankings are encoded as null.
func sandwichReport(rep *report.Report) *oas.SandwichReport {
	resp := &oas.SandwichReport{
		CustomerKey: rep.CustomerKey,
		FavoriteSandwich: oas.ReportProduct{
			Name:         rep.Favorite.Name,
			TimesOrdered: rep.Favorite.TimesOrdered,
		},
		TotalOrders:     rep.Totals.Orders,
		TotalSandwiches: rep.Totals.Sandwiches,
		TotalSpent:      rep.Totals.Spent.InexactFloat64(),
		OrderTimeline:   make([]oas.MonthBucket, 0, len(rep.Timeline)),
	}

	if c := rep.Favorite.Calories; c != nil {
		resp.FavoriteSandwich.Calories = oas.NewNilInt64(*c)
	} else {
		resp.FavoriteSandwich.Calories.SetToNull()
	}
	if rep.FavoriteMethod != "" {
		resp.FavoriteOrderMethod = oas.NewNilString(rep.FavoriteMethod)
	} else {
		resp.FavoriteOrderMethod.SetToNull()
	}
	if s := rep.FavoriteStore; s != nil {
		resp.FavoriteStore = oas.NewNilStore(oas.Store{City: s.City, Address: s.Address})
	} else {
		resp.FavoriteStore.SetToNull()
	}

	for _, b := range rep.Timeline {
		resp.OrderTimeline = append(resp.OrderTimeline, oas.MonthBucket{
			Month:       b.Month,
			MonthNumber: b.MonthNumber,
			Year:        b.Year,
			Sandwiches:  b.Sandwiches,
		})
	}
	return resp
}

func tableCheck(c *warehouse.TableCheck) *oas.TableCheck {
	return &oas.TableCheck{
		Schema:         c.Schema,
		Table:          c.Table,
		Exists:         c.Exists,
		Columns:        columns(c.Columns),
		MissingColumns: c.Missing,
		RowCount:       c.RowCount,
	}
}

func columns(cols []warehouse.Column) []oas.Column {
	out := make([]oas.Column, 0, len(cols))
	for _, c := range cols {
		out = append(out, oas.Column{Name: c.Name, Type: c.Type, Nullable: c.Nullable})
	}
	return out
}

func inventory(inv *warehouse.Inventory) *oas.Inventory {
	resp := &oas.Inventory{
		Dialect:  inv.Dialect,
		Database: inv.Database,
		Schemas:  make([]oas.InventorySchema, 0, len(inv.Schemas)),
	}
	for _, s := range inv.Schemas {
		schema := oas.InventorySchema{Name: s.Name, Tables: make([]oas.InventoryTable, 0, len(s.Tables))}
		for _, t := range s.Tables {
			table := oas.InventoryTable{
				Name:       t.Name,
				Columns:    columns(t.Columns),
				SampleRows: sampleRows(t.Sample),
			}
			if t.ColumnsError != "" {
				table.ColumnsError = oas.NewOptString(t.ColumnsError)
			}
			if t.SampleError != "" {
				table.SampleError = oas.NewOptString(t.SampleError)
			}
			schema.Tables = append(schema.Tables, table)
		}
		resp.Schemas = append(resp.Schemas, schema)
	}
	return resp
}

// sampleRows renders each row as a JSON object that keeps column order.
func sampleRows(rows []warehouse.Row) []jx.Raw {
	out := make([]jx.Raw, 0, len(rows))
	for _, row := range rows {
		e := new(jx.Encoder)
		e.ObjStart()
		for _, f := range row {
			e.FieldStart(f.Name)
			encodeValue(e, f.Value)
		}
		e.ObjEnd()
		out = append(out, jx.Raw(e.Bytes()))
	}
	return out
}

// encodeValue writes a value scanned from an arbitrary warehouse column.
func encodeValue(e *jx.Encoder, v any) {
	switch v := v.(type) {
	case nil:
		e.Null()
	case string:
		e.Str(v)
	case []byte:
		e.Str(string(v))
	case bool:
		e.Bool(v)
	case int64:
		e.Int64(v)
	case int:
		e.Int(v)
	case float64:
		e.Float64(v)
	case time.Time:
		e.Str(v.Format(time.RFC3339Nano))
	default:
		e.Str(fmt.Sprint(v))
	}
}
