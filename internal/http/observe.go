package httpapp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/http/handlers"
	"github.com/open-sspm/open-aigov/internal/metrics"
)

const unmatchedRoute = "unmatched"

// requestInfo is shared between the outer net/http wrapper and the router so
// the access log can name the matched route.
type requestInfo struct {
	id          string
	route       string
	status      int
	wroteHeader bool
}

type requestInfoKey struct{}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

type statusRecorder struct {
	http.ResponseWriter
	info *requestInfo
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.info.wroteHeader {
		w.info.status = code
		w.info.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.info.wroteHeader {
		w.info.status = http.StatusOK
		w.info.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// requestID keeps a well-formed inbound X-Request-ID and mints one otherwise.
func requestID(r *http.Request) string {
	if id := r.Header.Get(echo.HeaderXRequestID); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

// observe assigns the request id, then logs and counts every request once
// it has been served.
func (es *EchoServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		info := &requestInfo{id: requestID(r), route: unmatchedRoute}
		w.Header().Set(echo.HeaderXRequestID, info.id)

		rec := &statusRecorder{ResponseWriter: w, info: info}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)))

		status := info.status
		if !info.wroteHeader {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, info.route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, info.route).Observe(elapsed.Seconds())

		level := es.logger.Info
		if status >= http.StatusInternalServerError {
			level = es.logger.Error
		}
		level("http request",
			"request_id", info.id,
			"method", r.Method,
			"route", info.route,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}

// requestContext copies the request id onto the echo context and records
// the matched route template for the access log.
func (es *EchoServer) requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		if info := requestInfoFrom(c.Request().Context()); info != nil {
			if path := c.Path(); path != "" {
				info.route = path
			}
			c.Set(handlers.ContextKeyRequestID, info.id)
		}
		return next(c)
	}
}
