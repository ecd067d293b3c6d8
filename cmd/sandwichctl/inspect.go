package main

import (
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

func newInspectCmd() *cobra.Command {
	var (
		cfg        warehouse.Config
		sampleRows int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the warehouse catalog as YAML",
		Long: `Lists every schema, table and column visible to the configured warehouse
together with a few sample rows per table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg.ApplyEnvFallbacks()

			wh, err := warehouse.Open(ctx, cfg, globalTelemetry{})
			if err != nil {
				return err
			}
			defer func() { _ = wh.Close() }()

			inv, err := wh.Inventory(ctx, sampleRows)
			if err != nil {
				return errors.Wrap(err, "inventory")
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			return writeInventory(w, inv)
		},
	}
	cmd.Flags().StringVar(&cfg.Driver, "driver", warehouse.DriverSQLite, "Warehouse driver: snowflake or sqlite")
	cmd.Flags().StringVar(&cfg.Path, "path", "warehouse.db", "sqlite database file")
	cmd.Flags().StringVar(&cfg.Database, "database", "", "Warehouse database (default $SNOWFLAKE_DATABASE)")
	cmd.Flags().StringVar(&cfg.Schema, "schema", "", "Warehouse schema (default $SNOWFLAKE_SCHEMA)")
	cmd.Flags().IntVar(&sampleRows, "sample-rows", 5, "Rows sampled per table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

type inventoryDoc struct {
	Dialect  string      `yaml:"dialect"`
	Database string      `yaml:"database,omitempty"`
	Schemas  []schemaDoc `yaml:"schemas"`
}

type schemaDoc struct {
	Name   string     `yaml:"name"`
	Tables []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Name         string       `yaml:"name"`
	Columns      []columnDoc  `yaml:"columns"`
	ColumnsError string       `yaml:"columns_error,omitempty"`
	Sample       []*yaml.Node `yaml:"sample,omitempty"`
	SampleError  string       `yaml:"sample_error,omitempty"`
}

type columnDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

func writeInventory(w io.Writer, inv *warehouse.Inventory) error {
	doc := inventoryDoc{
		Dialect:  inv.Dialect,
		Database: inv.Database,
		Schemas:  make([]schemaDoc, 0, len(inv.Schemas)),
	}
	for _, s := range inv.Schemas {
		sd := schemaDoc{Name: s.Name, Tables: make([]tableDoc, 0, len(s.Tables))}
		for _, t := range s.Tables {
			td := tableDoc{Name: t.Name, ColumnsError: t.ColumnsError, SampleError: t.SampleError}
			for _, c := range t.Columns {
				td.Columns = append(td.Columns, columnDoc{Name: c.Name, Type: c.Type, Nullable: c.Nullable})
			}
			for _, row := range t.Sample {
				n, err := rowNode(row)
				if err != nil {
					return errors.Wrapf(err, "encode %s.%s row", s.Name, t.Name)
				}
				td.Sample = append(td.Sample, n)
			}
			sd.Tables = append(sd.Tables, td)
		}
		doc.Schemas = append(doc.Schemas, sd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

// rowNode renders a sample row as a mapping that keeps column order.
func rowNode(row warehouse.Row) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range row {
		var v yaml.Node
		if err := v.Encode(f.Value); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&v,
		)
	}
	return n, nil
}
