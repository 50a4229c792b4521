package usecase

import (
	"admin-srv/internal/report"
	"admin-srv/internal/report/repository"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type implUseCase struct {
	l        log.Logger
	platform platformsrv.IPlatform
	repo     repository.Cache
	latch    *fetchLatch[string]
}

// New creates a new report UseCase implementation.
func New(l log.Logger, platform platformsrv.IPlatform, repo repository.Cache) report.UseCase {
	return &implUseCase{
		l:        l,
		platform: platform,
		repo:     repo,
		latch:    newFetchLatch[string](),
	}
}
