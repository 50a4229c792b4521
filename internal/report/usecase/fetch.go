package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/internal/report/repository"
	"admin-srv/pkg/platformsrv"
)

// fetchCached is the single path every report family goes through:
//
//  1. A fresh cache hit is returned as-is; equal filter sets within the TTL
//     never refetch. A user-initiated refresh (force) bypasses the fresh
//     window unconditionally and goes straight upstream.
//  2. On a miss, the latch collapses concurrent fetches for the same key
//     into one upstream call. A success is written back to the cache.
//  3. On upstream failure, the last-good payload is served with stale=true;
//     only when there is none does the caller see an error.
func fetchCached[T any](ctx context.Context, uc *implUseCase, sc model.Scope, family, path string, params map[string]string, force bool) (T, bool, error) {
	var data T

	key := repository.CacheKey(family, params)
	if !force {
		if raw, err := uc.repo.GetFresh(ctx, key); err == nil {
			if err := json.Unmarshal(raw, &data); err == nil {
				return data, false, nil
			}
			uc.l.Warnf(ctx, "report.usecase.fetchCached: corrupt fresh cache entry for %s", key)
		}
	}

	raw, fetchErr := uc.latch.Do(key, func() ([]byte, error) {
		res := platformsrv.FetchReport[json.RawMessage](ctx, uc.platform, sc.SessionToken, path, params)
		if !res.Success {
			return nil, fmt.Errorf("%w: %s", report.ErrFetchFailed, res.Error)
		}

		payload := []byte(*res.Data)
		if err := uc.repo.Save(ctx, key, payload); err != nil {
			uc.l.Errorf(ctx, "report.usecase.fetchCached: cache Save failed for %s: %v", key, err)
		}
		return payload, nil
	})
	if fetchErr == nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			return data, false, fmt.Errorf("%w: %v", report.ErrFetchFailed, err)
		}
		return data, false, nil
	}

	uc.l.Warnf(ctx, "report.usecase.fetchCached: upstream failed for %s, trying last-good: %v", key, fetchErr)
	lastGood, err := uc.repo.GetLastGood(ctx, key)
	if err != nil {
		return data, false, fetchErr
	}
	if err := json.Unmarshal(lastGood, &data); err != nil {
		return data, false, fetchErr
	}
	return data, true, nil
}

// validPeriod defaults a blank period to month and rejects unknown values.
func validPeriod(p model.Period) (model.Period, error) {
	if p == "" {
		return model.PeriodMonth, nil
	}
	if !model.ValidPeriod(p) {
		return p, report.ErrInvalidPeriod
	}
	return p, nil
}
