// Package httpx wires HTTP endpoints to the record and identity services.
//
// Two response conventions coexist on purpose: product and auth endpoints
// always answer 200 with the outcome in the body, employee endpoints use
// real status codes. Existing clients depend on both.
package httpx

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkline/storefront/internal/service/auth"
	"github.com/mkline/storefront/internal/service/employee"
	"github.com/mkline/storefront/internal/service/product"
	"github.com/mkline/storefront/internal/session"
)

const healthCheckTimeout = 2 * time.Second

// RateLimits carries the per-route request budgets.
type RateLimits struct {
	Signup int
	Signin int
}

// Router wires HTTP endpoints to services.
type Router struct {
	mux       chi.Router
	logger    *slog.Logger
	auth      auth.Service
	products  product.Service
	employees employee.Service
	sessions  *session.Manager
	limiter   RateLimiter
	limits    RateLimits
	dbHealth  func(context.Context) error

	metricsOnce        sync.Once
	metricsInitialized bool
	requestTotal       *prometheus.CounterVec
	requestLatency     *prometheus.HistogramVec
	rateLimitHits      *prometheus.CounterVec
}

// NewRouter assembles routes with dependencies.
func NewRouter(
	logger *slog.Logger,
	authSvc auth.Service,
	productSvc product.Service,
	employeeSvc employee.Service,
	sessions *session.Manager,
	limiter RateLimiter,
	limits RateLimits,
	dbHealth func(context.Context) error,
) *Router {
	r := &Router{
		mux:       chi.NewRouter(),
		logger:    logger,
		auth:      authSvc,
		products:  productSvc,
		employees: employeeSvc,
		sessions:  sessions,
		limiter:   limiter,
		limits:    limits,
		dbHealth:  dbHealth,
	}
	if r.limiter == nil {
		r.limiter = NewMemoryRateLimiter()
	}
	r.initMetrics()
	r.register()
	return r
}

// ServeHTTP delegates to the underlying mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Close releases background resources.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Close()
	}
}

func (r *Router) register() {
	r.mux.Use(r.audit)

	r.mux.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.mux.Get("/healthz", r.handleHealthz)

	r.mux.Get("/", r.handleListProducts)
	r.mux.Post("/", r.handleListProductsPost)
	r.mux.Get("/addProduct", r.requireLogin(r.handleAddProduct))
	r.mux.Get("/getSpecificProduct/{id}", r.requireLogin(r.handleGetProduct))
	r.mux.Get("/updateSpecificProduct/{id}", r.requireLogin(r.handleUpdateProduct))
	r.mux.Get("/deleteSpecificProduct/{id}", r.requireLogin(r.handleDeleteProduct))

	r.mux.Get("/signin", r.withRateLimit("/signin", r.limits.Signin, r.handleSignin))
	r.mux.Get("/signup", r.withRateLimit("/signup", r.limits.Signup, r.handleSignup))
	r.mux.Get("/signout", r.handleSignout)

	r.mux.Post("/addEmployee", r.handleAddEmployee)
	r.mux.Get("/getEmployee", r.handleGetEmployee)
	r.mux.Delete("/deleteEmployee", r.handleDeleteEmployee)
}

func (r *Router) handleHealthz(w http.ResponseWriter, req *http.Request) {
	components := make(map[string]any)
	status := "ok"

	ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
	defer cancel()

	if r.dbHealth != nil {
		if err := r.dbHealth(ctx); err != nil {
			status = "degraded"
			components["database"] = map[string]any{"status": "down", "error": err.Error()}
		} else {
			components["database"] = map[string]any{"status": "up"}
		}
	}
	if err := r.sessions.Ping(req.WithContext(ctx)); err != nil {
		status = "degraded"
		components["sessions"] = map[string]any{"status": "down", "error": err.Error()}
	} else {
		components["sessions"] = map[string]any{"status": "up"}
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status":     status,
		"components": components,
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// audit logs every request with its outcome and records metrics.
func (r *Router) audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(recorder, req)

		status := recorder.status
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		route := routePattern(req)
		r.recordRequestMetrics(req.Method, route, status, duration)

		fields := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"bytes", recorder.bytes,
			"duration_ms", duration.Milliseconds(),
		}
		if ip := clientIP(req); ip != "" {
			fields = append(fields, "ip", ip)
		}
		if reqID := strings.TrimSpace(req.Header.Get("X-Request-ID")); reqID != "" {
			fields = append(fields, "request_id", reqID)
		}

		switch {
		case status >= http.StatusInternalServerError:
			r.logger.Error("http_request", fields...)
		case status >= http.StatusBadRequest:
			r.logger.Warn("http_request", fields...)
		default:
			r.logger.Info("http_request", fields...)
		}
	})
}

func routePattern(req *http.Request) string {
	if rc := chi.RouteContext(req.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return req.URL.Path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
