package http

import (
	"admin-srv/internal/event"
	"admin-srv/internal/model"
	"admin-srv/pkg/paginator"
)

type listEventsReq struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	paginator.PaginateQuery
}

func (r listEventsReq) toInput() event.ListInput {
	return event.ListInput{
		Status:   r.Status,
		Category: r.Category,
		Search:   r.Search,
		PagQuery: r.PaginateQuery,
	}
}

type updateEventStatusReq struct {
	EventID string
	Status  string `json:"status" binding:"required"`
}

func (r updateEventStatusReq) toInput() event.UpdateStatusInput {
	return event.UpdateStatusInput{
		EventID: r.EventID,
		Status:  model.EventStatus(r.Status),
	}
}

type listEventsResp struct {
	Events     []model.Event    `json:"events"`
	Pagination model.Pagination `json:"pagination"`
}

func (h *handler) newListEventsResp(o event.ListOutput) listEventsResp {
	return listEventsResp{
		Events:     o.Events,
		Pagination: o.Pagination,
	}
}
