package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sourcefeed/modules/feed"
	"github.com/dmitrymomot/sourcefeed/pkg/cookie"
	"github.com/dmitrymomot/sourcefeed/pkg/httpserver"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/requestid"
	"github.com/dmitrymomot/sourcefeed/svc/catalog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrate, _ := cmd.Flags().GetBool("migrate")
		fixtures, _ := cmd.Flags().GetInt("fixtures")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		logger.SetAsDefault(log)

		ctx := cmd.Context()
		st, err := openStores(ctx, cfg, log, storeOptions{migrate: migrate})
		if err != nil {
			log.ErrorContext(ctx, "failed to open stores", logger.Error(err))
			return err
		}
		defer st.close()

		if fixtures > 0 {
			cat, err := loadCatalog(cfg.CatalogFile)
			if err != nil {
				return err
			}
			if err := st.items.Insert(ctx, cat.Items(fixtures)...); err != nil {
				return err
			}
			log.InfoContext(ctx, "fixture items inserted", logger.Count(fixtures))
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		svc := feed.NewService(st.sessions, st.items,
			feed.WithLogger(log),
			feed.WithMetrics(feed.NewMetrics(reg)),
			feed.WithCookieManager(cookie.NewFromConfig(cfg.Cookie)),
		)

		srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
		return srv.Run(ctx, newRouter(log, reg, st.checks, svc))
	},
}

func newRouter(log *slog.Logger, reg *prometheus.Registry, checks []func(context.Context) error, svc *feed.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, requestid.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Mount("/", svc.Handle())

	return r
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("migrate", false, "Apply pending Postgres migrations before serving")
	serveCmd.Flags().Int("fixtures", 0, "Insert this many generated items before serving")
}
