package event

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/paginator"
)

type ListInput struct {
	Status   string
	Category string
	Search   string
	PagQuery paginator.PaginateQuery
}

// params flattens the filters for the upstream query string. Blank values
// are dropped by the platform client.
func (i ListInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["status"] = i.Status
	params["category"] = i.Category
	params["search"] = i.Search
	return params
}

type ListOutput struct {
	Events     []model.Event
	Pagination model.Pagination
}

type UpdateStatusInput struct {
	EventID string
	Status  model.EventStatus
}
