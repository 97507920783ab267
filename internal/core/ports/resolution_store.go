package ports

import "go.trai.ch/attest/internal/core/domain"

// ResolutionStore persists dependency resolutions of Maven projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolution_store.go -destination=mocks/mock_resolution_store.go -package=mocks
type ResolutionStore interface {
	// Get returns the stored resolution for the project, or nil if there is none.
	Get(project string) (*domain.Resolution, error)

	// Put stores the resolution, replacing any previous one for the same project.
	Put(resolution domain.Resolution) error
}

// ProjectHasher fingerprints the build files of a Maven project.
type ProjectHasher interface {
	// Fingerprint returns a digest that changes whenever a build file under dir changes.
	Fingerprint(dir string) (string, error)
}
