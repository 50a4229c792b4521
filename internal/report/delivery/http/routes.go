package http

import (
	"admin-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/admin/reports")
	reports.Use(mw.Auth())
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/payments", h.Payments)
		reports.GET("/events", h.Events)
		reports.GET("/users", h.Users)
		reports.GET("/event-planners", h.EventPlanners)

		reports.GET("/charts", h.AllCharts)
		reports.GET("/charts/revenue", h.RevenueChart)
		reports.GET("/charts/registrations", h.RegistrationsChart)
		reports.GET("/charts/events", h.EventsChart)

		reports.GET("/export/:family", h.Export)
	}
}
