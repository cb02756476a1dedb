package accounts

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler serves account reconciliation endpoints
type Handler struct {
	service *reconciliation.Service
}

func NewHandler(service *reconciliation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/reconcile", h.Reconcile)
	g.POST("/score", h.Score)
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

type ReconcileRequest struct {
	Accounts    []models.AccountRecord `json:"accounts" validate:"required,dive"`
	WalletCards []models.WalletCard    `json:"wallet_cards,omitempty" validate:"omitempty,dive"`
}

// Reconcile groups tradelines across bureaus
// @Summary Reconcile accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body ReconcileRequest true "Account records"
// @Success 200 {object} reconciliation.AccountsResult
// @Failure 400 {object} httperror.HTTPError
// @Router /api/v1/accounts/reconcile [post]
func (h *Handler) Reconcile(c echo.Context) error {
	svc, err := h.requireService(c)
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[ReconcileRequest](c)
	if err != nil {
		return err
	}

	result, err := svc.ReconcileAccounts(c.Request().Context(), req.Accounts, req.WalletCards)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

type ScoreRequest struct {
	A models.AccountRecord `json:"a" validate:"required"`
	B models.AccountRecord `json:"b" validate:"required"`
}

// Score explains how two account records compare
// @Summary Score an account pair
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body ScoreRequest true "Account pair"
// @Success 200 {object} matching.Breakdown
// @Failure 400 {object} httperror.HTTPError
// @Router /api/v1/accounts/score [post]
func (h *Handler) Score(c echo.Context) error {
	svc, err := h.requireService(c)
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[ScoreRequest](c)
	if err != nil {
		return err
	}

	breakdown, err := svc.ScoreAccounts(c.Request().Context(), req.A, req.B)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breakdown)
}
