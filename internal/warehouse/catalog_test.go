package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	wh, counter := openEmpty(t)

	v, err := wh.Version(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^3\.\d+\.\d+`, v)
	assertBalanced(t, counter)
}

func TestInventory(t *testing.T) {
	wh, counter := openSeeded(t)

	inv, err := wh.Inventory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", inv.Dialect)
	require.Len(t, inv.Schemas, 1)
	assert.Equal(t, "main", inv.Schemas[0].Name)

	tables := map[string]Table{}
	for _, tbl := range inv.Schemas[0].Tables {
		tables[tbl.Name] = tbl
	}
	require.Contains(t, tables, "FACT_ORDERS")
	require.Contains(t, tables, "DIM_CUSTOMER")

	cust := tables["DIM_CUSTOMER"]
	require.Len(t, cust.Columns, 4)
	assert.Equal(t, Column{Name: "CUSTOMERKEY", Type: "INTEGER", Nullable: true}, cust.Columns[0])
	assert.False(t, cust.Columns[1].Nullable)
	require.Len(t, cust.Sample, 2)
	assert.Equal(t, "FIRSTNAME", cust.Sample[0][1].Name)
	assert.Equal(t, "Ada", cust.Sample[0][1].Value)
	assert.Empty(t, cust.SampleError)

	assertBalanced(t, counter)
}

func TestInventory_BrokenView(t *testing.T) {
	wh, counter := openEmpty(t)
	ctx := context.Background()
	require.NoError(t, wh.ApplyScript(ctx, `
		CREATE TABLE T (A INTEGER);
		CREATE TABLE KEEP (B TEXT);
		CREATE VIEW BROKEN AS SELECT * FROM T;
		DROP TABLE T;
	`))

	inv, err := wh.Inventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, inv.Schemas, 1)

	tables := map[string]Table{}
	for _, tbl := range inv.Schemas[0].Tables {
		tables[tbl.Name] = tbl
	}
	require.Contains(t, tables, "BROKEN")
	require.Contains(t, tables, "KEEP")

	broken := tables["BROKEN"]
	assert.Equal(t, ColumnsUnavailable, broken.ColumnsError)
	assert.Equal(t, SampleUnavailable, broken.SampleError)
	assert.Empty(t, broken.Columns)

	keep := tables["KEEP"]
	assert.Empty(t, keep.ColumnsError)
	require.Len(t, keep.Columns, 1)
	assert.Equal(t, "B", keep.Columns[0].Name)

	assertBalanced(t, counter)
}

func TestInventory_NoSamples(t *testing.T) {
	wh, _ := openSeeded(t)

	inv, err := wh.Inventory(context.Background(), 0)
	require.NoError(t, err)
	for _, tbl := range inv.Schemas[0].Tables {
		assert.Nil(t, tbl.Sample, tbl.Name)
	}
}

func TestCheckCustomerTable(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		wh, counter := openSeeded(t)

		check, err := wh.CheckCustomerTable(context.Background())
		require.NoError(t, err)
		assert.True(t, check.Exists)
		assert.Equal(t, "main", check.Schema)
		assert.Equal(t, CustomerTable, check.Table)
		assert.Empty(t, check.Missing)
		assert.Equal(t, int64(3), check.RowCount)
		assertBalanced(t, counter)
	})

	t.Run("Absent", func(t *testing.T) {
		wh, _ := openEmpty(t)

		check, err := wh.CheckCustomerTable(context.Background())
		require.NoError(t, err)
		assert.False(t, check.Exists)
		assert.Equal(t, CustomerColumns, check.Missing)
		assert.Zero(t, check.RowCount)
	})

	t.Run("MissingColumns", func(t *testing.T) {
		wh, _ := openEmpty(t)
		require.NoError(t, wh.ApplyScript(context.Background(),
			`CREATE TABLE DIM_CUSTOMER (CUSTOMERKEY INTEGER, firstname TEXT)`))

		check, err := wh.CheckCustomerTable(context.Background())
		require.NoError(t, err)
		assert.True(t, check.Exists)
		assert.Equal(t, []string{"LASTNAME", "PHONENUMBER"}, check.Missing)
	})
}
