package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
)

const usersJSON = `[
	{"first_name": "Ada", "last_name": "Lovelace", "role": "admin"},
	{"first_name": " Alan ", "last_name": "Turing"}
]`

func TestReadUsers(t *testing.T) {
	users, err := readUsers(strings.NewReader(usersJSON))
	require.NoError(t, err)
	assert.Equal(t, []seedUser{
		{FirstName: "Ada", LastName: "Lovelace"},
		{FirstName: "Alan", LastName: "Turing"},
	}, users)
}

func TestReadUsers_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"first_name": "Ada"}`},
		{"missing last name", `[{"first_name": "Ada"}]`},
		{"blank first name", `[{"first_name": "  ", "last_name": "Lovelace"}]`},
		{"wrong type", `[{"first_name": 1, "last_name": "Lovelace"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readUsers(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestReadUsersFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(usersJSON))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	users, err := readUsersFile(path)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

type fakeWriter struct {
	existing map[string]bool
	created  []string
	upserted []string
}

func (f *fakeWriter) Create(_ context.Context, first, last string) (*user.User, error) {
	if f.existing[first+" "+last] {
		return nil, user.ErrExists
	}
	f.created = append(f.created, first+" "+last)
	return &user.User{ID: int64(len(f.created)), FirstName: first, LastName: last}, nil
}

func (f *fakeWriter) Upsert(_ context.Context, first, last string) (*user.User, error) {
	f.upserted = append(f.upserted, first+" "+last)
	return &user.User{ID: int64(len(f.upserted)), FirstName: first, LastName: last}, nil
}

func TestSeedUsers(t *testing.T) {
	users := []seedUser{{"Ada", "Lovelace"}, {"Alan", "Turing"}}

	t.Run("Upsert", func(t *testing.T) {
		w := &fakeWriter{existing: map[string]bool{"Ada Lovelace": true}}
		n, err := seedUsers(context.Background(), w, users, false)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, w.upserted)
		assert.Empty(t, w.created)
	})
	t.Run("Strict", func(t *testing.T) {
		w := &fakeWriter{existing: map[string]bool{"Alan Turing": true}}
		n, err := seedUsers(context.Background(), w, users, true)
		require.True(t, errors.Is(err, user.ErrExists))
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"Ada Lovelace"}, w.created)
	})
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

// dumpDoc mirrors the inspect output with sample rows decoded as plain maps.
type dumpDoc struct {
	Dialect string `yaml:"dialect"`
	Schemas []struct {
		Name   string `yaml:"name"`
		Tables []struct {
			Name         string           `yaml:"name"`
			Columns      []columnDoc      `yaml:"columns"`
			ColumnsError string           `yaml:"columns_error"`
			Sample       []map[string]any `yaml:"sample"`
			SampleError  string           `yaml:"sample_error"`
		} `yaml:"tables"`
	} `yaml:"schemas"`
}

func TestSeedWarehouseAndInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.db")
	run(t, "seed-warehouse", "--path", path)

	dump := filepath.Join(t.TempDir(), "inventory.yaml")
	run(t, "inspect", "--driver", "sqlite", "--path", path, "--sample-rows", "1", "-o", dump)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)

	var doc dumpDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "sqlite", doc.Dialect)
	require.Len(t, doc.Schemas, 1)
	assert.Equal(t, "main", doc.Schemas[0].Name)

	found := false
	for _, tbl := range doc.Schemas[0].Tables {
		if tbl.Name != "DIM_CUSTOMER" {
			continue
		}
		found = true
		require.Len(t, tbl.Columns, 4)
		assert.Equal(t, "CUSTOMERKEY", tbl.Columns[0].Name)
		assert.Empty(t, tbl.ColumnsError)
		require.Len(t, tbl.Sample, 1)
		assert.Equal(t, map[string]any{
			"CUSTOMERKEY": 1,
			"FIRSTNAME":   "Ada",
			"LASTNAME":    "Lovelace",
			"PHONENUMBER": "555-010-0001",
		}, tbl.Sample[0])
		assert.Empty(t, tbl.SampleError)
	}
	require.True(t, found, "DIM_CUSTOMER missing from dump")

	// Column order is kept in the written document.
	assert.Regexp(t, `(?s)- CUSTOMERKEY: 1\s+FIRSTNAME: Ada\s+LASTNAME: Lovelace\s+PHONENUMBER: 555-010-0001`, string(data))
}

func TestSeedWarehouse_SchemaOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.db")
	run(t, "seed-warehouse", "--path", path, "--schema-only")

	out := run(t, "inspect", "--driver", "sqlite", "--path", path)
	assert.Contains(t, out, "name: FACT_ORDERS")
	assert.NotContains(t, out, "sample:")
}
