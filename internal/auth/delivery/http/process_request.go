package http

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.processLoginRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidInput
	}

	return req, nil
}

func (h *handler) processSignupRequest(c *gin.Context) (signupReq, error) {
	var req signupReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.processSignupRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidInput
	}

	return req, nil
}

func (h *handler) processLogoutRequest(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}
