package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONEncoder writes descriptors as an indented JSON array of resource descriptors.
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSONEncoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Encode implements ports.DescriptorEncoder.
func (e *JSONEncoder) Encode(w io.Writer, descriptors []domain.Descriptor) error {
	resources := make([]domain.ResourceDescriptor, len(descriptors))
	for i, d := range descriptors {
		resources[i] = d.Resource()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resources); err != nil {
		return zerr.Wrap(err, "failed to encode descriptors")
	}
	return nil
}
