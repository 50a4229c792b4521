package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List events
// @Description List events with status/category/search filters and pagination
// @Tags Event
// @Produce json
// @Param status query string false "Moderation status"
// @Param category query string false "Event category"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listEventsResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /admin/events [get]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListEventsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.ListEvents: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListEventsResp(o))
}

// @Summary Get event detail
// @Description Return one event by ID
// @Tags Event
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} response.Resp
// @Router /admin/events/{event_id} [get]
func (h *handler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, sc := h.processDetailRequest(c)

	o, err := h.uc.Detail(ctx, sc, eventID)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.GetEvent: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Update event status
// @Description Change an event's moderation status
// @Tags Event
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body updateEventStatusReq true "New status"
// @Success 200 {object} model.Event
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /admin/events/{event_id}/status [patch]
func (h *handler) UpdateEventStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.UpdateEventStatus: usecase UpdateStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
