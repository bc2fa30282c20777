package schedule

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	schedules := r.Group("/schedule-types")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", h.GetAll)
		schedules.GET("/:id", h.GetByID)
		schedules.POST("", middleware.RoleMiddleware("ADMIN", "HR"), h.Create)
		schedules.PUT("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Update)
		schedules.DELETE("/:id", middleware.RoleMiddleware("ADMIN", "HR"), h.Delete)
	}
}
