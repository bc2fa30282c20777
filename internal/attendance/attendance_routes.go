package attendance

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	movements := r.Group("/movements")
	movements.Use(middleware.AuthMiddleware())
	{
		movements.GET("/employee/:id", h.GetByEmployee)
	}
}
