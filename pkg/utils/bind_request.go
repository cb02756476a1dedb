package utils

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BindRequest decodes the request body into T and validates it. Both failures
// are reported as 400s and marked on the request span.
func BindRequest[T any](c echo.Context) (T, error) {
	var req T
	span := trace.SpanFromContext(c.Request().Context())

	if err := c.Bind(&req); err != nil {
		span.SetStatus(codes.Error, "malformed request body")
		return req, httperror.NewHTTPErrorf(http.StatusBadRequest, "malformed request body: %v", err)
	}

	if _, err := Validate(req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		return req, httperror.WrapError(http.StatusBadRequest, err)
	}

	return req, nil
}
