package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/admin/users")
	users.Use(mw.Auth())
	{
		users.GET("", h.ListUsers)
		users.GET("/pending", h.ListPendingUsers)
		users.PATCH("/:user_id", h.UpdateUser)
		users.PATCH("/:user_id/status", h.UpdateUserStatus)
	}
}
