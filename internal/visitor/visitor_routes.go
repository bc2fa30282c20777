package visitor

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	visitors := r.Group("/visitors")
	{
		// Public form endpoint, rate limited per source IP.
		visitors.POST("/register", middleware.RateLimitByIP(1, 5), h.Register)

		visitors.GET("", middleware.AuthMiddleware(), h.GetAll)
	}
}
