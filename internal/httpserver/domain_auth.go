package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "admin-srv/internal/auth/delivery/http"
	authUsecase "admin-srv/internal/auth/usecase"
	"admin-srv/internal/middleware"
)

func (srv *HTTPServer) setupAuthDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := authUsecase.New(srv.l, srv.platform)

	handler := authHTTP.New(srv.l, uc, srv.discord, srv.cookieConfig)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
