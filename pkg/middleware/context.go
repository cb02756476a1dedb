package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/context"
)

const (
	// HeaderUserID identifies the user whose credit report is reconciled
	HeaderUserID = "X-User-ID"
	// HeaderSnapshotID ties an API call to a stored bureau pull
	HeaderSnapshotID = "X-Snapshot-ID"
)

// Context stores request identity on the request context. The request id is
// generated when absent and always echoed back.
func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := requestIDFor(c)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			ctx := context.SetRequestID(req.Context(), requestID)
			ctx = context.SetMethod(ctx, req.Method)
			ctx = context.SetRoute(ctx, req.URL.Path)
			ctx = context.SetRemoteIP(ctx, c.RealIP())
			ctx = context.SetUserID(ctx, req.Header.Get(HeaderUserID))
			ctx = context.SetSnapshotID(ctx, req.Header.Get(HeaderSnapshotID))

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func requestIDFor(c echo.Context) string {
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
