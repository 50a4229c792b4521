package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "admin-srv/internal/event/delivery/http"
	eventUsecase "admin-srv/internal/event/usecase"
	"admin-srv/internal/middleware"
)

func (srv *HTTPServer) setupEventDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := eventUsecase.New(srv.l, srv.platform)

	handler := eventHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
