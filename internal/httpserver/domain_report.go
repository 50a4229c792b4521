package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"admin-srv/internal/middleware"
	reportHTTP "admin-srv/internal/report/delivery/http"
	"admin-srv/internal/report/repository"
	reportRedis "admin-srv/internal/report/repository/redis"
	reportUsecase "admin-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := reportRedis.New(srv.l, srv.redisClient, repository.Options{
		FreshTTL: time.Duration(srv.config.Cache.FreshTTL) * time.Second,
	})

	uc := reportUsecase.New(srv.l, srv.platform, cacheRepo)

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
