package mvnlist

import (
	"context"
	"os"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CoordinateReader = (*Reader)(nil)

// Reader implements ports.CoordinateReader for captured dependency plugin output.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the dependency list stored at path.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.MavenCoordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open dependency list"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	coords, err := Parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return coords, nil
}
