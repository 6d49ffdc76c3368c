package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/profile"
	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

func main() {
	service := "profile"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8084")

	store := profile.NewStore()
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := profile.OpenDB(dsn)
		if err != nil {
			log.Fatal("open database failed", zap.Error(err))
		}
		store = profile.NewPostgresStore(db)
		log.Info("using postgres store")
	}

	s := &profile.Server{Store: store, Log: log}

	h := profile.NewHandler(s, profile.HTTPDeps{
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
