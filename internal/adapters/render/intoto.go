package render

import (
	"encoding/json"
	"io"

	attestationv1 "github.com/in-toto/attestation/go/v1"
	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/types/known/structpb"
)

// InTotoEncoder writes descriptors as the resolvedDependencies list of a SLSA
// provenance build definition, using the in-toto v1 ResourceDescriptor message.
type InTotoEncoder struct{}

// NewInTotoEncoder creates a new InTotoEncoder.
func NewInTotoEncoder() *InTotoEncoder {
	return &InTotoEncoder{}
}

type resolvedDependencies struct {
	ResolvedDependencies []resolvedDependency `json:"resolvedDependencies"`
}

// resolvedDependency mirrors the JSON form of the in-toto ResourceDescriptor.
// Annotations are written from the ordered domain set; the proto Struct would sort its keys.
type resolvedDependency struct {
	Name        string              `json:"name,omitempty"`
	URI         string              `json:"uri,omitempty"`
	Digest      map[string]string   `json:"digest,omitempty"`
	Annotations *domain.Annotations `json:"annotations,omitempty"`
}

// Encode implements ports.DescriptorEncoder.
func (e *InTotoEncoder) Encode(w io.Writer, descriptors []domain.Descriptor) error {
	out := resolvedDependencies{ResolvedDependencies: make([]resolvedDependency, 0, len(descriptors))}
	for _, d := range descriptors {
		res := d.Resource()
		rd, err := ToResourceDescriptor(res)
		if err != nil {
			return zerr.With(err, "name", res.Name())
		}
		if err := rd.Validate(); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid resource descriptor"), "name", res.Name())
		}

		entry := resolvedDependency{
			Name:   rd.GetName(),
			URI:    rd.GetUri(),
			Digest: rd.GetDigest(),
		}
		if annotations := res.Annotations(); annotations.Len() > 0 {
			entry.Annotations = &annotations
		}
		out.ResolvedDependencies = append(out.ResolvedDependencies, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return zerr.Wrap(err, "failed to encode resolved dependencies")
	}
	return nil
}

// ToResourceDescriptor converts base descriptor fields into the in-toto v1 message.
// Digests are left for the attestation assembler to fill in.
func ToResourceDescriptor(r domain.ResourceDescriptor) (*attestationv1.ResourceDescriptor, error) {
	rd := &attestationv1.ResourceDescriptor{
		Name: r.Name(),
	}
	if uri, ok := r.URI().Get(); ok {
		rd.Uri = uri
	}

	if r.Annotations().Len() > 0 {
		fields := make(map[string]any, r.Annotations().Len())
		for k, v := range r.Annotations().All() {
			fields[k] = v
		}
		annotations, err := structpb.NewStruct(fields)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to convert annotations")
		}
		rd.Annotations = annotations
	}
	return rd, nil
}
