package main

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xenking/sandwich-unwrapped/db"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

func newSeedWarehouseCmd() *cobra.Command {
	var (
		path       string
		schemaOnly bool
	)

	cmd := &cobra.Command{
		Use:   "seed-warehouse",
		Short: "Create an sqlite development warehouse",
		Long: `Creates the order star schema and the legacy sandwich details table in an
sqlite file, then loads a small sample data set. Point the API at the file
with SANDWICH_WAREHOUSE_DRIVER=sqlite and SANDWICH_WAREHOUSE_PATH.
Running it again leaves existing rows untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			wh, err := warehouse.Open(ctx, warehouse.Config{
				Driver: warehouse.DriverSQLite,
				Path:   path,
			}, globalTelemetry{})
			if err != nil {
				return err
			}
			defer func() { _ = wh.Close() }()

			if err := wh.ApplyScript(ctx, db.WarehouseSchema); err != nil {
				return errors.Wrap(err, "create schema")
			}
			if !schemaOnly {
				if err := wh.ApplyScript(ctx, db.WarehouseSample); err != nil {
					return errors.Wrap(err, "load sample data")
				}
			}

			zctx.From(ctx).Info("Warehouse seeded",
				zap.String("path", path),
				zap.Bool("sample", !schemaOnly),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "warehouse.db", "sqlite database file")
	cmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create tables without sample data")
	return cmd
}
