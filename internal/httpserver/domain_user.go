package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"admin-srv/internal/middleware"
	userHTTP "admin-srv/internal/user/delivery/http"
	userUsecase "admin-srv/internal/user/usecase"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := userUsecase.New(srv.l, srv.platform)

	handler := userHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
