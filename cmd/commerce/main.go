package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/commerce"
	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

func main() {
	service := "commerce"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8083")

	store := commerce.NewStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := commerce.OpenDB(dsn)
		if err != nil {
			log.Fatal("open database failed", zap.Error(err))
		}
		store = commerce.NewPostgresStore(db)
		log.Info("using postgres store")
	}

	reg := prometheus.NewRegistry()

	events := commerce.NewBroker()
	commerce.RegisterCartMetrics(events, reg)
	commerce.RegisterEventLogging(events, log)

	svc := &commerce.Service{
		Store:   store,
		Catalog: commerce.NewCatalogClient(getenv("CATALOG_URL", "http://catalog:8082")),
		Events:  events,
		Log:     log,
	}

	s := &commerce.Server{Svc: svc, Log: log}

	h := commerce.NewHandler(s, commerce.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
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
