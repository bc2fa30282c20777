package employee

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", h.GetAll)
		employees.GET("/options", h.GetOptions)
		employees.GET("/:id", h.GetByID)
		employees.GET("/:id/qr", h.GetQRCode)
		employees.POST("", middleware.RoleMiddleware("ADMIN", "HR"), h.Create)
		employees.PUT("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Update)
		employees.DELETE("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Delete)
	}
}
