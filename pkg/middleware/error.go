package middleware

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ramsey-B/fern/pkg/context"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type ErrorResponse struct {
	Message   string         `json:"message"`
	RequestID string         `json:"request_id"`
	TraceID   string         `json:"trace_id"`
	Meta      map[string]any `json:"meta"`
}

// Error renders handler errors as an ErrorResponse. Client errors are logged
// as warnings and server errors as errors.
func Error(logger ectologger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		resp, code := resolveError(err)
		resp.RequestID = context.GetRequestID(ctx)
		resp.TraceID = tracing.GetTraceID(ctx)

		log := logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"status": code,
			"route":  c.Path(),
		})
		if code >= http.StatusInternalServerError {
			trace.SpanFromContext(ctx).SetStatus(codes.Error, resp.Message)
			log.Error("api is returning an error")
		} else {
			log.Warn("api is rejecting a request")
		}

		_ = c.JSON(code, resp)
	}
}

func resolveError(err error) (ErrorResponse, int) {
	resp := ErrorResponse{Message: http.StatusText(http.StatusInternalServerError), Meta: map[string]any{}}

	if httperror.IsHTTPError(err) {
		httperr := httperror.ToHTTPError(err)
		resp.Message = httperr.Error()
		if httperr.Meta != nil {
			resp.Meta = httperr.Meta
		}
		return resp, httperror.GetStatusCode(err)
	}

	if he, ok := err.(*echo.HTTPError); ok {
		resp.Message = http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok {
			resp.Message = msg
		}
		return resp, he.Code
	}

	return resp, http.StatusInternalServerError
}
