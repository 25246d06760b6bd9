// Package middleware carries the cross-cutting HTTP wrappers: request
// metrics and the lightweight visitor check on mutating routes.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	"github.com/cashforcars/CFC-AppointmentService/pkg/metrics"
)

// VisitorHeader identifies the booking widget session on mutating routes
const VisitorHeader = "X-Visitor-ID"

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := routeTemplate(r)
			m.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
			m.RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// routeTemplate resolves the mux route pattern so metrics don't explode
// into per-ID label values
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

// Auth requires the visitor header on protected routes
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(VisitorHeader) == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{
				Error: VisitorHeader + " header is required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
