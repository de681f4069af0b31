package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/salonadmin/api/controllers"
	"github.com/angelmondragon/salonadmin/api/routes"
	"github.com/angelmondragon/salonadmin/internal/bookings"
	"github.com/angelmondragon/salonadmin/internal/campaigns"
	"github.com/angelmondragon/salonadmin/internal/customers"
	"github.com/angelmondragon/salonadmin/internal/employees"
	"github.com/angelmondragon/salonadmin/internal/places"
	"github.com/angelmondragon/salonadmin/pkg/config"
	"github.com/angelmondragon/salonadmin/pkg/db"
	"github.com/angelmondragon/salonadmin/pkg/instance"
	"github.com/angelmondragon/salonadmin/pkg/logger"
	"github.com/angelmondragon/salonadmin/pkg/metrics"
	"github.com/angelmondragon/salonadmin/pkg/migrate"
	"github.com/angelmondragon/salonadmin/pkg/platform"
	"github.com/angelmondragon/salonadmin/pkg/pubsub"
	"github.com/angelmondragon/salonadmin/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		return err
	}
	defer func() {
		multierr.AppendInto(&err, dbClient.Close())
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	readiness := map[string]controllers.Pinger{"database": dbClient}

	var idempotencyStore redis.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			multierr.AppendInto(&err, redisClient.Close())
		}()
		idempotencyStore = redisClient
		readiness["redis"] = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, idempotency keys are not enforced")
	}

	var bookingEvents pubsub.BookingEvents = pubsub.NoopPublisher{}
	if cfg.PubSub.Enabled() {
		psClient, psErr := pubsub.NewClient(ctx, cfg.PubSub, logg)
		if psErr != nil {
			return psErr
		}
		publisher := pubsub.NewTopicPublisher(psClient.BookingEventsPublisher())
		defer func() {
			publisher.Stop()
			multierr.AppendInto(&err, psClient.Close())
		}()
		bookingEvents = publisher
		readiness["pubsub"] = psClient
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	platformClient, err := platform.NewClient(
		cfg.Platform.BaseURL,
		platform.ContextCredentials{},
		platform.WithTimeout(cfg.Platform.Timeout),
		platform.WithMetrics(metrics.NewUpstreamMetrics(registry)),
	)
	if err != nil {
		return err
	}

	placeService, err := places.NewService(platformClient)
	if err != nil {
		return err
	}
	customerService, err := customers.NewService(platformClient)
	if err != nil {
		return err
	}
	employeeService, err := employees.NewService(platformClient)
	if err != nil {
		return err
	}
	bookingService, err := bookings.NewService(platformClient, bookingEvents, loc, logg)
	if err != nil {
		return err
	}
	campaignService, err := campaigns.NewService(campaigns.NewRepository(dbClient.DB()), dbClient, platformClient, logg)
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"timezone": loc.String(),
		"instance": instance.GetID(),
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			readiness,
			idempotencyStore,
			metrics.NewHTTPMetrics(registry),
			registry,
			loc,
			placeService,
			customerService,
			employeeService,
			bookingService,
			campaignService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
