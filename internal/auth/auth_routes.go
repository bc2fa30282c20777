package auth

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
		auth.POST("/register", middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"), h.Register)
	}
}
