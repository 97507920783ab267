package ports

import (
	"context"

	"go.trai.ch/attest/internal/core/domain"
)

// CoordinateReader extracts raw Maven coordinates from an input.
//
//go:generate go run go.uber.org/mock/mockgen -source=coordinate_reader.go -destination=mocks/mock_coordinate_reader.go -package=mocks
type CoordinateReader interface {
	// Read returns the coordinates declared by the input at path, in declaration order.
	Read(ctx context.Context, path string) ([]domain.MavenCoordinate, error)
}
