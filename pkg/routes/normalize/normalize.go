package normalize

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/normalizers"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler exposes the normalizer registry
type Handler struct {
	service *reconciliation.Service
}

func NewHandler(service *reconciliation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("", h.Normalize)
	g.GET("", h.List)
}

func (h *Handler) requireService(c echo.Context) (*reconciliation.Service, error) {
	if h != nil && h.service != nil {
		return h.service, nil
	}

	_, svc, err := ectoinject.GetContext[*reconciliation.Service](c.Request().Context())
	if err != nil || svc == nil {
		return nil, httperror.NewHTTPError(http.StatusServiceUnavailable, "reconciliation service unavailable")
	}
	return svc, nil
}

type NormalizeRequest struct {
	Normalizer string `json:"normalizer" validate:"required"`
	Value      string `json:"value"`
}

type NormalizeResponse struct {
	Normalizer string `json:"normalizer"`
	Value      string `json:"value"`
}

// Normalize applies a named normalizer to a value
// @Summary Normalize a value
// @Tags Normalize
// @Accept json
// @Produce json
// @Param body body NormalizeRequest true "Normalizer and value"
// @Success 200 {object} NormalizeResponse
// @Failure 400 {object} httperror.HTTPError
// @Router /api/v1/normalize [post]
func (h *Handler) Normalize(c echo.Context) error {
	svc, err := h.requireService(c)
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[NormalizeRequest](c)
	if err != nil {
		return err
	}

	value, err := svc.Normalize(c.Request().Context(), req.Normalizer, req.Value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NormalizeResponse{Normalizer: req.Normalizer, Value: value})
}

// List returns the registered normalizer names
// @Router /api/v1/normalize [get]
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"normalizers": normalizers.Names()})
}
