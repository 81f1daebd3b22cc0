package shop

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/internal/checkout"
	"MiniShop/internal/journal"
	"MiniShop/internal/session"
	"MiniShop/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	contactLimitPerMin  = 15
	checkoutLimitPerMin = 30
	limitWindow         = time.Minute

	readyTimeout = 1 * time.Second
)

// Server holds the composed service: catalog reads, cart mutations, and
// the two form pipelines, all behind one session-aware router.
type Server struct {
	Catalog  *catalog.Server
	Cart     *cart.Server
	Forms    *checkout.Server
	Sessions *session.Manager
	Journals []journal.Appender
	Log      *zap.Logger
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(api chi.Router) {
		api.Use(s.Sessions.Middleware)

		api.Get("/products", s.Catalog.ListHandler())
		api.Get("/product/{id}", s.Catalog.GetHandler())

		api.Get("/cart", s.Cart.ViewHandler())
		api.Post("/cart/add", s.Cart.AddHandler())
		api.Post("/cart/remove", s.Cart.RemoveHandler())
		api.Post("/cart/update", s.Cart.UpdateHandler())
		api.Post("/cart/clear", s.Cart.ClearHandler())

		contactLimiter := kit.NewIPRateLimiter(contactLimitPerMin, limitWindow)
		checkoutLimiter := kit.NewIPRateLimiter(checkoutLimitPerMin, limitWindow)

		api.With(contactLimiter.Middleware).Post("/contact", s.Forms.ContactHandler())
		api.With(checkoutLimiter.Middleware).Post("/checkout", s.Forms.CheckoutHandler())
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(deps.Log))
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	for _, j := range s.Journals {
		if err := j.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
