package overtime

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	entries := r.Group("/overtime")
	entries.Use(middleware.AuthMiddleware())
	{
		entries.GET("/employee/:id", h.GetByEmployee)
		entries.POST("", middleware.RoleMiddleware("ADMIN", "HR"), h.Create)
		entries.POST("/:id/approve", middleware.RoleMiddleware("ADMIN", "HR"), h.Approve)
	}
}
