package http

import (
	"admin-srv/internal/model"
	"admin-srv/internal/user"
	"admin-srv/pkg/paginator"
)

type listUsersReq struct {
	Role   string `form:"role"`
	Status string `form:"status"`
	Search string `form:"search"`
	paginator.PaginateQuery
}

func (r listUsersReq) toInput() user.ListInput {
	return user.ListInput{
		Role:     r.Role,
		Status:   r.Status,
		Search:   r.Search,
		PagQuery: r.PaginateQuery,
	}
}

type updateUserStatusReq struct {
	UserID string
	Status string `json:"status" binding:"required"`
}

func (r updateUserStatusReq) toInput() user.UpdateStatusInput {
	return user.UpdateStatusInput{
		UserID: r.UserID,
		Status: model.UserStatus(r.Status),
	}
}

type updateUserReq struct {
	UserID      string
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	CompanyName *string `json:"companyName"`
}

func (r updateUserReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		UserID:      r.UserID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Address:     r.Address,
		CompanyName: r.CompanyName,
	}
}

type listUsersResp struct {
	Users      []model.User     `json:"users"`
	Pagination model.Pagination `json:"pagination"`
}

func (h *handler) newListUsersResp(o user.ListOutput) listUsersResp {
	return listUsersResp{
		Users:      o.Users,
		Pagination: o.Pagination,
	}
}
