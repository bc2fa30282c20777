package settings

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	s := r.Group("/settings")
	s.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		s.GET("", h.Get)
		s.PUT("", h.Update)
	}
}
