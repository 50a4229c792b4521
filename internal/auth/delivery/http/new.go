package http

import (
	"admin-srv/config"
	"admin-srv/internal/auth"
	"admin-srv/internal/middleware"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	discord      discord.IDiscord
	cookieConfig config.CookieConfig
}

func New(l log.Logger, uc auth.UseCase, discord discord.IDiscord, cookieConfig config.CookieConfig) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		discord:      discord,
		cookieConfig: cookieConfig,
	}
}
