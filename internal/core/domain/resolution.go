package domain

import (
	"context"
	"time"
)

// Resolution is a cached result of resolving the dependencies of a Maven project.
type Resolution struct {
	// Project is the absolute path of the project directory.
	Project string `json:"project"`

	// Fingerprint identifies the project's build files at resolution time.
	Fingerprint string `json:"fingerprint"`

	// Coordinates are the resolved dependencies in resolver order.
	Coordinates []MavenCoordinate `json:"coordinates"`

	// ResolvedAt is when the resolution was performed.
	ResolvedAt time.Time `json:"resolved_at,omitzero"`
}

type refreshKey struct{}

// WithRefresh marks ctx so that cached resolutions are ignored and replaced.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// RefreshRequested reports whether ctx was marked with WithRefresh.
func RefreshRequested(ctx context.Context) bool {
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}
