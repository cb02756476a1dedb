package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/context"
	"github.com/Ramsey-B/fern/pkg/metrics"
)

// quietPrefixes are polled by orchestrators and scrapers and only get metrics
var quietPrefixes = []string{"/api/v1/health", "/metrics"}

// Logger records request metrics and logs one line per request. Failed
// requests are logged at warn level.
func Logger(logger ectologger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			req, res := c.Request(), c.Response()
			route := c.Path()
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(res.Status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())

			if isQuiet(req.URL.Path) {
				return nil
			}

			ctx := req.Context()
			log := logger.WithContext(ctx).WithFields(map[string]any{
				"request_id":    context.GetRequestID(ctx),
				"user_id":       context.GetUserID(ctx),
				"snapshot_id":   context.GetSnapshotID(ctx),
				"method":        req.Method,
				"route":         route,
				"status":        res.Status,
				"remote_ip":     c.RealIP(),
				"response_time": elapsed.String(),
				"request_size":  req.ContentLength,
				"response_size": res.Size,
			})
			if res.Status >= http.StatusBadRequest {
				log.Warn("Request failed")
				return nil
			}
			log.Info("Request")
			return nil
		}
	}
}

func isQuiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
