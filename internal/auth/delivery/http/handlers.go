package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Admin login
// @Description Exchange admin credentials for a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Login request"
// @Success 200 {object} sessionResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setSessionCookie(c, o.Token, o.Remember)
	response.OK(c, h.newSessionResp(o))
}

// @Summary Admin signup
// @Description Register a new admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body signupReq true "Signup request"
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /auth/signup [post]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.Signup: usecase Signup failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setSessionCookie(c, o.Token, false)
	response.OK(c, h.newSessionResp(o))
}

// @Summary Admin logout
// @Description Invalidate the session and clear the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc := h.processLogoutRequest(c)

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.Logout: usecase Logout failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, nil)
}

func (h *handler) setSessionCookie(c *gin.Context, token string, remember bool) {
	maxAge := h.cookieConfig.MaxAge
	if remember {
		maxAge = h.cookieConfig.MaxAgeRemember
	}
	c.SetCookie(h.cookieConfig.Name, token, maxAge, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookieConfig.Name, "", -1, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}
