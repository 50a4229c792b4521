package usecase

import (
	"admin-srv/internal/auth"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type implUseCase struct {
	l        log.Logger
	platform platformsrv.IPlatform
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, platform platformsrv.IPlatform) auth.UseCase {
	return &implUseCase{
		l:        l,
		platform: platform,
	}
}
