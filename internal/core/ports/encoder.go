package ports

import (
	"io"

	"go.trai.ch/attest/internal/core/domain"
)

// DescriptorEncoder serializes descriptors for an attestation consumer.
//
//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type DescriptorEncoder interface {
	// Encode writes the descriptors to w in order.
	Encode(w io.Writer, descriptors []domain.Descriptor) error
}

// EncoderRegistry resolves encoders by format name.
type EncoderRegistry interface {
	// Lookup returns the encoder registered for format, or domain.ErrUnknownFormat.
	Lookup(format string) (DescriptorEncoder, error)
	// Formats returns the registered format names, sorted.
	Formats() []string
}
