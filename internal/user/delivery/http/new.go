package http

import (
	"admin-srv/internal/middleware"
	"admin-srv/internal/user"
	"admin-srv/pkg/discord"
	"admin-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      user.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc user.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
