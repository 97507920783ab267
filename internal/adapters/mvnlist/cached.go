package mvnlist

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CoordinateReader = (*CachedReader)(nil)

// CachedReader reuses earlier resolutions of a Maven project while its build files are unchanged.
// Cache failures never fail a read; they are logged and the project is resolved again.
type CachedReader struct {
	next   ports.CoordinateReader
	store  ports.ResolutionStore
	hasher ports.ProjectHasher
	logger ports.Logger
	now    func() time.Time
}

// NewCachedReader wraps next with a resolution cache.
func NewCachedReader(
	next ports.CoordinateReader,
	store ports.ResolutionStore,
	hasher ports.ProjectHasher,
	logger ports.Logger,
) *CachedReader {
	return &CachedReader{
		next:   next,
		store:  store,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Read returns the cached coordinates for dir when its fingerprint matches,
// and otherwise delegates and records the result.
func (r *CachedReader) Read(ctx context.Context, dir string) ([]domain.MavenCoordinate, error) {
	project, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project path"), "dir", dir)
	}

	fingerprint, err := r.hasher.Fingerprint(project)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("resolution cache disabled for %s: %v", dir, err))
		return r.next.Read(ctx, dir)
	}

	if !domain.RefreshRequested(ctx) {
		if coords, ok := r.lookup(project, fingerprint); ok {
			r.logger.Info("using cached resolution for " + dir)
			return coords, nil
		}
	}

	coords, err := r.next.Read(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := r.store.Put(domain.Resolution{
		Project:     project,
		Fingerprint: fingerprint,
		Coordinates: coords,
		ResolvedAt:  r.now().UTC(),
	}); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to cache resolution for %s: %v", dir, err))
	}

	return coords, nil
}

func (r *CachedReader) lookup(project, fingerprint string) ([]domain.MavenCoordinate, bool) {
	res, err := r.store.Get(project)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to read resolution cache for %s: %v", project, err))
		return nil, false
	}
	if res == nil || res.Fingerprint != fingerprint {
		return nil, false
	}
	return res.Coordinates, true
}
