package user

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/paginator"
)

type ListInput struct {
	Role     string
	Status   string
	Search   string
	PagQuery paginator.PaginateQuery
}

func (i ListInput) Params() map[string]string {
	params := i.PagQuery.Params()
	params["role"] = i.Role
	params["status"] = i.Status
	params["search"] = i.Search
	return params
}

type ListOutput struct {
	Users      []model.User
	Pagination model.Pagination
}

type UpdateStatusInput struct {
	UserID string
	Status model.UserStatus
}

// UpdateInput patches profile fields. Nil pointers are left untouched
// upstream.
type UpdateInput struct {
	UserID      string
	FirstName   *string
	LastName    *string
	Phone       *string
	Address     *string
	CompanyName *string
}

// Fields returns only the set members as an upstream PATCH body.
func (i UpdateInput) Fields() map[string]any {
	fields := make(map[string]any)
	if i.FirstName != nil {
		fields["firstName"] = *i.FirstName
	}
	if i.LastName != nil {
		fields["lastName"] = *i.LastName
	}
	if i.Phone != nil {
		fields["phone"] = *i.Phone
	}
	if i.Address != nil {
		fields["address"] = *i.Address
	}
	if i.CompanyName != nil {
		fields["companyName"] = *i.CompanyName
	}
	return fields
}
