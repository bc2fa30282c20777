package checkin

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// The scan endpoint is unauthenticated: it serves the reception kiosk.
// Rate limiting is the only guard.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/checkin/scan", middleware.RateLimitByIP(5, 10), h.Scan)
}
