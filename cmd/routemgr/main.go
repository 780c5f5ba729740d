// Command routemgr prepares the route manager store: it loads the
// configuration, connects, creates the tables and reports what it finds.
package main

import (
	"context"
	"os"
	"time"

	"github.com/coderi421/routemgr/db"
	"github.com/coderi421/routemgr/db/middlewares/opentelemetry"
	"github.com/coderi421/routemgr/db/middlewares/prometheus"
	"github.com/coderi421/routemgr/db/middlewares/querylog"
	"github.com/coderi421/routemgr/internal/config"
	"github.com/coderi421/routemgr/internal/logger"
	"github.com/coderi421/routemgr/internal/telemetry"
	"github.com/coderi421/routemgr/models"
	"github.com/rs/zerolog"
)

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("could not load config")
	}

	log, err := logger.New(cfg.Logging, nil)
	if err != nil {
		boot.Fatal().Err(err).Msg("could not build logger")
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("routemgr failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tp, err := telemetry.NewTracerProvider(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracer provider shutdown")
		}
	}()

	store, err := db.OpenConfig(cfg.Database,
		db.DBWithLogger(log),
		db.DBWithMiddlewares(
			opentelemetry.MiddlewareBuilder{}.Build(),
			prometheus.MiddlewareBuilder{
				Namespace: cfg.Metrics.Namespace,
				Subsystem: "db",
				Name:      "query_duration_microseconds",
				Help:      "Latency of SQL statements.",
			}.Build(),
			querylog.NewBuilder(log).
				LogArgs(cfg.Logging.LogQueryArgs).
				SlowThreshold(cfg.Logging.SlowQueryThreshold).
				Build(),
		))
	if err != nil {
		return err
	}
	defer func() { _ = store.Disconnect() }()

	if err = store.Connect(ctx); err != nil {
		return err
	}
	if err = store.CreateTables(ctx); err != nil {
		return err
	}

	for _, table := range []string{models.SalesPersonTable, models.ClientTable, models.RouteTable} {
		rows, err := store.SelectRows(ctx, table, []string{"id"}, db.Raw("active = ?", true).AsPredicate())
		if err != nil {
			return err
		}
		log.Info().Str("table", table).Int("active", len(rows)).Msg("table ready")
	}
	return nil
}
