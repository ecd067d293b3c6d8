package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/sandwich-unwrapped/gen/oas"
	"github.com/xenking/sandwich-unwrapped/internal/domain/report"
	"github.com/xenking/sandwich-unwrapped/internal/handler"
	"github.com/xenking/sandwich-unwrapped/internal/repository"
	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
	"github.com/xenking/sandwich-unwrapped/pkg/health"
	"github.com/xenking/sandwich-unwrapped/pkg/httpmiddleware"
)

// Telemetry supplies the OpenTelemetry providers. *app.Telemetry from
// go-faster/sdk satisfies it.
type Telemetry interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
}

const maxBodyBytes = 64 << 10

// Run creates all dependencies, serves HTTP until ctx is cancelled and then
// drains and shuts down. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("warehouse.driver", cfg.Warehouse.Driver),
	)

	// Local user store.
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Warehouse pool. Sessions are opened lazily per request.
	wh, err := warehouse.Open(ctx, cfg.Warehouse, m)
	if err != nil {
		return errors.Wrap(err, "open warehouse")
	}
	defer func() {
		if err := wh.Close(); err != nil {
			lg.Warn("Close warehouse", zap.Error(err))
		}
	}()

	// A warehouse outage degrades reporting but name login keeps working,
	// so the warehouse check does not fail readiness.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddReadinessCheck("warehouse", 10*time.Second, health.PingCheck(wh), health.Optional())
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	h := handler.New(
		handler.Config{SampleRows: cfg.Inspect.SampleRows},
		repository.NewUserRepository(pool),
		warehouse.NewCustomerRepository(wh),
		warehouse.NewSandwichRepository(wh),
		report.NewService(warehouse.NewReportSource(wh)),
		wh,
	)

	oasServer, err := oas.NewServer(h,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
		oas.WithNotFound(handler.NotFound),
		oas.WithMethodNotAllowed(handler.MethodNotAllowed),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	routeFinder := httpmiddleware.MakeRouteFinder[oas.Route](oasServer)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		// Reports run five warehouse statements back to back.
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Addr:           cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(lg),
			httpmiddleware.RequestID(),
			httpmiddleware.Recovery(),
			httpmiddleware.LimitBody(maxBodyBytes),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization"},
				ExposeHeaders:    []string{httpmiddleware.RequestIDHeader},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.Instrument("sandwich-api", routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		defer healthSvc.Stop()

		healthSvc.SetReady(false)
		if ctx.Err() != nil {
			lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
			time.Sleep(cfg.Graceful.ReadinessDelay)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})
	return g.Wait()
}
