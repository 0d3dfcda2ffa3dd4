package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopinsights-backend/api/controllers"
	"github.com/angelmondragon/shopinsights-backend/api/middleware"
	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/internal/customers"
	"github.com/angelmondragon/shopinsights-backend/internal/orders"
	"github.com/angelmondragon/shopinsights-backend/internal/products"
	"github.com/angelmondragon/shopinsights-backend/internal/tenants"
	"github.com/angelmondragon/shopinsights-backend/pkg/config"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/angelmondragon/shopinsights-backend/pkg/metrics"
)

// Services bundles the resource services mounted under /api.
type Services struct {
	Tenants   tenants.Service
	Customers customers.Service
	Products  products.Service
	Orders    orders.Service
}

// NewRouter mounts the resource endpoints, health checks and, when a
// gatherer is supplied, /metrics. httpMetrics may be nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	svcs Services,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.NotFound(pkgerrors.CodeRouteNotFound, "Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.KindMethod, pkgerrors.CodeMethodNotAllowed, "Method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/tenants", func(r chi.Router) {
			r.Get("/", controllers.GetTenants(svcs.Tenants, logg))
			r.Post("/", controllers.CreateTenant(svcs.Tenants, logg))
			r.Put("/", controllers.UpdateTenant(svcs.Tenants, logg))
			r.Delete("/", controllers.DeleteTenant(svcs.Tenants, logg))
		})
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.GetCustomers(svcs.Customers, logg))
			r.Post("/", controllers.CreateCustomer(svcs.Customers, logg))
			r.Put("/", controllers.UpdateCustomer(svcs.Customers, logg))
			r.Delete("/", controllers.DeleteCustomer(svcs.Customers, logg))
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.GetProducts(svcs.Products, logg))
			r.Post("/", controllers.CreateProduct(svcs.Products, logg))
			r.Put("/", controllers.UpdateProduct(svcs.Products, logg))
			r.Delete("/", controllers.DeleteProduct(svcs.Products, logg))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.GetOrders(svcs.Orders, logg))
			r.Post("/", controllers.CreateOrder(svcs.Orders, logg))
			r.Put("/", controllers.UpdateOrder(svcs.Orders, logg))
			r.Delete("/", controllers.DeleteOrder(svcs.Orders, logg))
		})
	})

	return r
}
