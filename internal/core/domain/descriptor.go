package domain

import (
	"encoding/json"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// DescriptorKind tags the concrete variant of a Descriptor.
type DescriptorKind string

const (
	// KindMaven identifies MavenArtifactResourceDescriptor values.
	KindMaven DescriptorKind = "maven"
	// KindGeneric identifies GenericResourceDescriptor values.
	KindGeneric DescriptorKind = "generic"
)

// Descriptor is a resource descriptor variant that can be stored in a heterogeneous
// collection and deduplicated structurally.
type Descriptor interface {
	// Kind returns the variant tag.
	Kind() DescriptorKind
	// Resource returns the base descriptor fields.
	Resource() ResourceDescriptor
	// Equal reports structural equality. Descriptors of different kinds are never equal.
	Equal(other Descriptor) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
}

// ResourceDescriptor holds the fields shared by every descriptor variant:
// a display name, an optional location URI and ordered annotations.
type ResourceDescriptor struct {
	name        string
	uri         OptionalString
	annotations Annotations
}

// NewResourceDescriptor creates a ResourceDescriptor.
func NewResourceDescriptor(name string, uri OptionalString, annotations Annotations) ResourceDescriptor {
	return ResourceDescriptor{
		name:        name,
		uri:         uri,
		annotations: annotations,
	}
}

// Name returns the display name.
func (r ResourceDescriptor) Name() string {
	return r.name
}

// URI returns the location of the resource, if known.
func (r ResourceDescriptor) URI() OptionalString {
	return r.uri
}

// Annotations returns the auxiliary metadata.
func (r ResourceDescriptor) Annotations() Annotations {
	return r.annotations
}

// Equal compares the base fields.
func (r ResourceDescriptor) Equal(other ResourceDescriptor) bool {
	return r.name == other.name &&
		r.uri == other.uri &&
		r.annotations.Equal(other.annotations)
}

// writeHash feeds the base fields into h.
func (r ResourceDescriptor) writeHash(h *xxhash.Digest) {
	writeString(h, r.name)
	writeOptional(h, r.uri)

	keys := r.annotations.Keys()
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := r.annotations.Get(k)
		writeString(h, k)
		writeString(h, v)
	}
	_, _ = h.Write([]byte{0}) // Section separator
}

type resourceJSON struct {
	Name        string       `json:"name"`
	URI         string       `json:"uri,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// MarshalJSON renders the descriptor in the in-toto ResourceDescriptor shape.
// An absent uri and empty annotations are omitted.
func (r ResourceDescriptor) MarshalJSON() ([]byte, error) {
	out := resourceJSON{Name: r.name}
	if uri, ok := r.uri.Get(); ok {
		out.URI = uri
	}
	if r.annotations.Len() > 0 {
		out.Annotations = &r.annotations
	}
	return json.Marshal(out)
}

// GenericResourceDescriptor is a descriptor that carries only the base fields.
type GenericResourceDescriptor struct {
	ResourceDescriptor
}

var _ Descriptor = (*GenericResourceDescriptor)(nil)

// NewGenericResourceDescriptor wraps base fields into a Descriptor.
func NewGenericResourceDescriptor(r ResourceDescriptor) *GenericResourceDescriptor {
	return &GenericResourceDescriptor{ResourceDescriptor: r}
}

// Kind returns KindGeneric.
func (d *GenericResourceDescriptor) Kind() DescriptorKind {
	return KindGeneric
}

// Resource returns the base fields.
func (d *GenericResourceDescriptor) Resource() ResourceDescriptor {
	return d.ResourceDescriptor
}

// Equal reports whether other is a generic descriptor with equal base fields.
func (d *GenericResourceDescriptor) Equal(other Descriptor) bool {
	o, ok := other.(*GenericResourceDescriptor)
	if !ok {
		return false
	}
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	return d.ResourceDescriptor.Equal(o.ResourceDescriptor)
}

// Hash returns the XXHash of the kind and base fields.
func (d *GenericResourceDescriptor) Hash() uint64 {
	h := xxhash.New()
	writeString(h, string(KindGeneric))
	if d != nil {
		d.ResourceDescriptor.writeHash(h)
	}
	return h.Sum64()
}

func writeString(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(s)
	_, _ = h.Write([]byte{0})
}

// writeOptional prefixes the value with a presence byte so that absent and empty differ.
func writeOptional(h *xxhash.Digest, o OptionalString) {
	v, ok := o.Get()
	if !ok {
		_, _ = h.Write([]byte{0})
		return
	}
	_, _ = h.Write([]byte{1})
	writeString(h, v)
}
