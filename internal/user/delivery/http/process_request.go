package http

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListUsersRequest(c *gin.Context) (listUsersReq, model.Scope, error) {
	var req listUsersReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.processListUsersRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidInput
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateStatusRequest(c *gin.Context) (updateUserStatusReq, model.Scope, error) {
	var req updateUserStatusReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.processUpdateStatusRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidInput
	}
	req.UserID = c.Param("user_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateUserRequest(c *gin.Context) (updateUserReq, model.Scope, error) {
	var req updateUserReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.processUpdateUserRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidInput
	}
	req.UserID = c.Param("user_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
