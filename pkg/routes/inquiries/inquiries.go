package inquiries

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Handler serves inquiry grouping endpoints
type Handler struct {
	service *reconciliation.Service
}

func NewHandler(service *reconciliation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/group", h.Group)
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

type GroupRequest struct {
	Inquiries  []models.InquiryRecord    `json:"inquiries" validate:"required,dive"`
	UserGroups []models.UserInquiryGroup `json:"user_groups,omitempty" validate:"omitempty,dive"`
}

// Group clusters inquiries into applications
// @Summary Group inquiries
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param body body GroupRequest true "Inquiries and saved groups"
// @Success 200 {object} reconciliation.InquiriesResult
// @Failure 400 {object} httperror.HTTPError
// @Router /api/v1/inquiries/group [post]
func (h *Handler) Group(c echo.Context) error {
	svc, err := h.requireService(c)
	if err != nil {
		return err
	}

	req, err := utils.BindRequest[GroupRequest](c)
	if err != nil {
		return err
	}

	result, err := svc.GroupInquiries(c.Request().Context(), req.Inquiries, req.UserGroups)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
