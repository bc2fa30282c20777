package report

import (
	"net/http"
	"time"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dashboard DashboardService
}

func NewHandler(dashboard DashboardService) *Handler {
	return &Handler{dashboard: dashboard}
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.dashboard.Today(c.Request.Context(), time.Now())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
