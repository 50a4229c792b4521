package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	events := r.Group("/admin/events")
	events.Use(mw.Auth())
	{
		events.GET("", h.ListEvents)
		events.GET("/:event_id", h.GetEvent)
		events.PATCH("/:event_id/status", h.UpdateEventStatus)
	}
}
