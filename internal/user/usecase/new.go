package usecase

import (
	"admin-srv/internal/user"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type implUseCase struct {
	l        log.Logger
	platform platformsrv.IPlatform
}

// New creates a new user UseCase implementation.
func New(l log.Logger, platform platformsrv.IPlatform) user.UseCase {
	return &implUseCase{
		l:        l,
		platform: platform,
	}
}
