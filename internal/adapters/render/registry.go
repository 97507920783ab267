// Package render serializes resource descriptors for attestation consumers.
package render

import (
	"maps"
	"slices"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FormatJSON renders descriptors as a JSON array in the in-toto ResourceDescriptor shape.
	FormatJSON = "json"
	// FormatInToto renders descriptors as the resolvedDependencies of an in-toto provenance predicate.
	FormatInToto = "intoto"
	// FormatPURL renders one Package URL per line.
	FormatPURL = "purl"
)

var _ ports.EncoderRegistry = (*Registry)(nil)

// Registry implements ports.EncoderRegistry.
type Registry struct {
	encoders map[string]ports.DescriptorEncoder
}

// NewRegistry creates a Registry holding the built-in encoders.
func NewRegistry() *Registry {
	return &Registry{
		encoders: map[string]ports.DescriptorEncoder{
			FormatJSON:   NewJSONEncoder(),
			FormatInToto: NewInTotoEncoder(),
			FormatPURL:   NewPURLEncoder(),
		},
	}
}

// Lookup returns the encoder registered for format.
func (r *Registry) Lookup(format string) (ports.DescriptorEncoder, error) {
	enc, ok := r.encoders[format]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
	return enc, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	return slices.Sorted(maps.Keys(r.encoders))
}
