package usecase

import (
	"admin-srv/internal/event"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type implUseCase struct {
	l        log.Logger
	platform platformsrv.IPlatform
}

// New creates a new event UseCase implementation.
func New(l log.Logger, platform platformsrv.IPlatform) event.UseCase {
	return &implUseCase{
		l:        l,
		platform: platform,
	}
}
