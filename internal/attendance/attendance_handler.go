package attendance

import (
	"net/http"
	"time"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetByEmployee lists an employee's ledger rows for a date range.
// Defaults to the current month when from/to are omitted.
func (h *Handler) GetByEmployee(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid from date, expected YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid to date, expected YYYY-MM-DD", nil)
			return
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
