package department

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetByID)
		departments.POST("", middleware.RoleMiddleware("ADMIN", "HR"), h.Create)
		departments.PUT("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Update)
		departments.DELETE("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Delete)
	}
}
