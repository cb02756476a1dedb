package wallet

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler serves wallet linking endpoints
type Handler struct {
	service *reconciliation.Service
}

func NewHandler(service *reconciliation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/link", h.Link)
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

type LinkRequest struct {
	Cards    []models.WalletCard    `json:"cards" validate:"required,dive"`
	Accounts []models.AccountRecord `json:"accounts" validate:"required,dive"`
}

// Link pairs wallet cards with reconciled account groups
// @Summary Link wallet cards
// @Tags Wallet
// @Accept json
// @Produce json
// @Param body body LinkRequest true "Wallet cards and account records"
// @Success 200 {object} reconciliation.WalletResult
// @Failure 400 {object} httperror.HTTPError
// @Router /api/v1/wallet/link [post]
func (h *Handler) Link(c echo.Context) error {
	svc, err := h.requireService(c)
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[LinkRequest](c)
	if err != nil {
		return err
	}

	result, err := svc.LinkWallet(c.Request().Context(), req.Cards, req.Accounts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
