package http

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListEventsRequest(c *gin.Context) (listEventsReq, model.Scope, error) {
	var req listEventsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "event.delivery.http.processListEventsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidInput
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (string, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Param("event_id"), sc
}

func (h *handler) processUpdateStatusRequest(c *gin.Context) (updateEventStatusReq, model.Scope, error) {
	var req updateEventStatusReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "event.delivery.http.processUpdateStatusRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidInput
	}
	req.EventID = c.Param("event_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
