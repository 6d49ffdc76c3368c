package main

import (
	"context"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8082")

	store := catalog.NewStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := catalog.OpenDB(dsn)
		if err != nil {
			log.Fatal("open database failed", zap.Error(err))
		}
		pg := catalog.NewPostgresStore(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.Seed(ctx); err != nil {
			cancel()
			log.Fatal("seed catalog failed", zap.Error(err))
		}
		cancel()

		store = pg
		log.Info("using postgres store")
	}

	s := &catalog.Server{Store: store, Log: log}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
