package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/auth"
	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	AuthURL     string
	CatalogURL  string
	CommerceURL string
	ProfileURL  string
	JWTSecret   string
}

const (
	readyTimeout      = 2 * time.Second
	readyProbeTimeout = 700 * time.Millisecond
	logoutCartTimeout = 2 * time.Second
)

var upstreamClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	},
}

func NewHandler(deps Deps, httpDeps HTTPDeps) (http.Handler, error) {
	authProxy, err := NewReverseProxy(deps.AuthURL, httpDeps.Log)
	if err != nil {
		return nil, err
	}
	catalogProxy, err := NewReverseProxy(deps.CatalogURL, httpDeps.Log)
	if err != nil {
		return nil, err
	}
	commerceProxy, err := NewReverseProxy(deps.CommerceURL, httpDeps.Log)
	if err != nil {
		return nil, err
	}
	profileProxy, err := NewReverseProxy(deps.ProfileURL, httpDeps.Log)
	if err != nil {
		return nil, err
	}

	jwt := auth.NewTokenMaker(deps.JWTSecret)

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	r.Handle("/auth", authProxy)
	r.Handle("/auth/*", authProxy)

	r.Handle("/courses", catalogProxy)
	r.Handle("/courses/{slug}", catalogProxy)
	r.Handle("/courses/{slug}/sessions", catalogProxy)

	// The access check routes to commerce, which needs to know whether a
	// purchase exists. Anonymous requests still get the preview session.
	r.With(OptionalAuthJWT(jwt), InjectHeaders).
		Handle("/courses/{slug}/sessions/{index}/access", commerceProxy)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthJWT(jwt))
		pr.Use(InjectHeaders)

		// Logout discards the cart on top of the client dropping its token.
		pr.Post("/auth/logout", logout(deps, httpDeps.Log))

		pr.Handle("/cart", commerceProxy)
		pr.Handle("/cart/*", commerceProxy)
		pr.Handle("/checkout", commerceProxy)
		pr.Handle("/my-courses", commerceProxy)

		pr.Handle("/profile", profileProxy)
		pr.Handle("/profile/*", profileProxy)
		pr.Handle("/settings", profileProxy)
		pr.Handle("/theme", profileProxy)
	})

	return r, nil
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// logout clears the server-side cart. A failure to reach commerce is
// logged but does not block the logout itself.
func logout(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), logoutCartTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deps.CommerceURL+"/cart", nil)
		if err == nil {
			req.Header.Set("X-User-Id", r.Header.Get("X-User-Id"))
			req.Header.Set("X-User-Email", r.Header.Get("X-User-Email"))
			req.Header.Set("X-User-Role", r.Header.Get("X-User-Role"))

			resp, derr := upstreamClient.Do(req)
			if derr != nil {
				err = derr
			} else {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode >= http.StatusBadRequest {
					err = fmt.Errorf("status=%d", resp.StatusCode)
				}
			}
		}
		if err != nil && log != nil {
			log.Warn("logout cart clear failed", zap.Error(err))
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	upstreams := []struct {
		name string
		url  string
	}{
		{"auth", deps.AuthURL},
		{"catalog", deps.CatalogURL},
		{"commerce", deps.CommerceURL},
		{"profile", deps.ProfileURL},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, up := range upstreams {
			if err := checkReady(ctx, up.url+"/readyz"); err != nil {
				if log != nil {
					log.Warn("readyz failed: "+up.name, zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, up.name+" not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}

func checkReady(ctx context.Context, url string) error {
	cctx, cancel := context.WithTimeout(ctx, readyProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := upstreamClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}
	return nil
}
