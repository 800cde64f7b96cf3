package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	checkoutmodel "github.com/storefront-labs/checkout-svc/internal/service/models/checkout"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/transport/http/checkout"
	listorders "github.com/storefront-labs/checkout-svc/internal/transport/http/list_orders"
	"github.com/storefront-labs/checkout-svc/pkg/http/middleware/trace"
	"github.com/storefront-labs/checkout-svc/pkg/logger"
)

type checkoutService interface {
	Checkout(ctx context.Context, model checkoutmodel.Checkout) (checkoutmodel.Result, error)
}

type orderService interface {
	GetOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}

type identityResolver interface {
	Resolve(r *http.Request) string
}

type HTTPTransport struct {
	server      *http.Server
	router      *chi.Mux
	checkoutSvc checkoutService
	orderSvc    orderService
	identity    identityResolver
}

func NewHTTPTransport(
	checkoutSvc checkoutService,
	orderSvc orderService,
	identity identityResolver,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:      server,
		router:      router,
		checkoutSvc: checkoutSvc,
		orderSvc:    orderSvc,
		identity:    identity,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api/{storeId}", func(r chi.Router) {
		r.Options("/checkout", h.preflight)
		r.Post("/checkout", h.checkout)
		r.Get("/orders", h.listOrders)
	})
}

func (h *HTTPTransport) preflight(w http.ResponseWriter, r *http.Request) {
	checkout.Preflight(w, r)
}

func (h *HTTPTransport) checkout(w http.ResponseWriter, r *http.Request) {
	checkout.Checkout(w, r, h.checkoutSvc, h.identity)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
		// The checkout preflight handler owns its response; the middleware
		// must not intercept OPTIONS.
		OptionsPassthrough: true,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
