package report

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/dashboard", middleware.AuthMiddleware(), h.Dashboard)
}
