package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List users
// @Description List platform users with role/status/search filters and pagination
// @Tags User
// @Produce json
// @Param role query string false "Account role"
// @Param status query string false "Account status"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listUsersResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /admin/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListUsersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.ListUsers: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListUsersResp(o))
}

// @Summary List pending users
// @Description List accounts awaiting approval
// @Tags User
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listUsersResp
// @Failure 401 {object} response.Resp
// @Router /admin/users/pending [get]
func (h *handler) ListPendingUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListUsersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListPending(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.ListPendingUsers: usecase ListPending failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListUsersResp(o))
}

// @Summary Update user status
// @Description Change a user's account status
// @Tags User
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body updateUserStatusReq true "New status"
// @Success 200 {object} model.User
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /admin/users/{user_id}/status [patch]
func (h *handler) UpdateUserStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateUserStatus: usecase UpdateStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Update user profile
// @Description Patch profile fields on a user record
// @Tags User
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body updateUserReq true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /admin/users/{user_id} [patch]
func (h *handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateUserRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateUser: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
