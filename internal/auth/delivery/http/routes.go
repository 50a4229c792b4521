package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
	}

	protected := r.Group("/auth")
	protected.Use(mw.Auth())
	{
		protected.POST("/logout", h.Logout)
	}
}
