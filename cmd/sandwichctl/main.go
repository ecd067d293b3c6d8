// Command sandwichctl provisions and inspects the stores behind the
// Sandwich Unwrapped API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		lg      *zap.Logger
	)

	root := &cobra.Command{
		Use:   "sandwichctl",
		Short: "Provision and inspect Sandwich Unwrapped data stores",
		Long: `sandwichctl seeds the local user store, provisions an sqlite
development warehouse and dumps the warehouse catalog.

Warehouse commands read Snowflake credentials from the SNOWFLAKE_* variables
when the snowflake driver is selected.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			lg, err = config.Build()
			if err != nil {
				return errors.Wrap(err, "build logger")
			}
			cmd.SetContext(zctx.Base(cmd.Context(), lg))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if lg != nil {
				_ = lg.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSeedUsersCmd(),
		newSeedWarehouseCmd(),
		newInspectCmd(),
	)
	return root
}

// globalTelemetry exposes the process-wide OpenTelemetry providers, which are
// no-ops unless something installs real ones.
type globalTelemetry struct{}

func (globalTelemetry) TracerProvider() trace.TracerProvider { return otel.GetTracerProvider() }
func (globalTelemetry) MeterProvider() metric.MeterProvider  { return otel.GetMeterProvider() }
