package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// AnnotationType is the annotation key holding the packaging type.
	AnnotationType = "type"
	// AnnotationScope is the annotation key holding the dependency scope.
	AnnotationScope = "scope"

	// DefaultRepositoryURL is the base URL artifact URIs are derived from.
	DefaultRepositoryURL = "https://repo1.maven.org/maven2/"
	// DefaultAbsentToken is how an absent coordinate component is rendered in a descriptor name.
	DefaultAbsentToken = "null"
)

// MavenArtifactResourceDescriptor is a resource descriptor for a Maven dependency.
// It keeps the full coordinate so that type and scope take part in equality even though
// they only surface through annotations.
type MavenArtifactResourceDescriptor struct {
	ResourceDescriptor
	coordinate MavenCoordinate
}

var _ Descriptor = (*MavenArtifactResourceDescriptor)(nil)

// Coordinate returns the coordinate the descriptor was built from.
func (d *MavenArtifactResourceDescriptor) Coordinate() MavenCoordinate {
	return d.coordinate
}

// Kind returns KindMaven.
func (d *MavenArtifactResourceDescriptor) Kind() DescriptorKind {
	return KindMaven
}

// Resource returns the base fields.
func (d *MavenArtifactResourceDescriptor) Resource() ResourceDescriptor {
	return d.ResourceDescriptor
}

// Equal reports whether other is a Maven descriptor with the same coordinate,
// name, uri and annotations.
func (d *MavenArtifactResourceDescriptor) Equal(other Descriptor) bool {
	o, ok := other.(*MavenArtifactResourceDescriptor)
	if !ok {
		return false
	}
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	return d.coordinate == o.coordinate && d.ResourceDescriptor.Equal(o.ResourceDescriptor)
}

// Hash returns the XXHash of the kind, the coordinate and the base fields.
func (d *MavenArtifactResourceDescriptor) Hash() uint64 {
	h := xxhash.New()
	writeString(h, string(KindMaven))
	if d == nil {
		return h.Sum64()
	}
	writeOptional(h, d.coordinate.GroupID)
	writeOptional(h, d.coordinate.ArtifactID)
	writeOptional(h, d.coordinate.Version)
	writeOptional(h, d.coordinate.Type)
	writeOptional(h, d.coordinate.Scope)
	d.ResourceDescriptor.writeHash(h)
	return h.Sum64()
}

// BuilderOption configures a DescriptorBuilder.
type BuilderOption func(*DescriptorBuilder)

// WithRepositoryURL sets the repository base URL. A trailing slash is added when missing.
func WithRepositoryURL(url string) BuilderOption {
	return func(b *DescriptorBuilder) {
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		b.repositoryURL = url
	}
}

// WithAbsentToken sets how absent coordinate components are rendered in names.
func WithAbsentToken(token string) BuilderOption {
	return func(b *DescriptorBuilder) {
		b.absentToken = token
	}
}

// DescriptorBuilder derives Maven resource descriptors from raw coordinates.
// It is immutable once created and safe for concurrent use.
type DescriptorBuilder struct {
	repositoryURL string
	absentToken   string
}

// NewDescriptorBuilder creates a DescriptorBuilder.
func NewDescriptorBuilder(opts ...BuilderOption) *DescriptorBuilder {
	b := &DescriptorBuilder{
		repositoryURL: DefaultRepositoryURL,
		absentToken:   DefaultAbsentToken,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewDescriptorBuilder()

// NewMavenArtifactResourceDescriptor builds a descriptor with the default repository and absent token.
func NewMavenArtifactResourceDescriptor(c MavenCoordinate) *MavenArtifactResourceDescriptor {
	return defaultBuilder.Build(c)
}

// Build derives the name, uri and annotations for c. It never fails: missing data
// degrades to an absent uri or omitted annotations.
func (b *DescriptorBuilder) Build(c MavenCoordinate) *MavenArtifactResourceDescriptor {
	return &MavenArtifactResourceDescriptor{
		ResourceDescriptor: NewResourceDescriptor(b.name(c), b.uri(c), annotationsFor(c)),
		coordinate:         c,
	}
}

func (b *DescriptorBuilder) name(c MavenCoordinate) string {
	return c.GroupID.OrElse(b.absentToken) + ":" +
		c.ArtifactID.OrElse(b.absentToken) + ":" +
		c.Version.OrElse(b.absentToken)
}

// uri is absent unless groupId, artifactId and version are all present.
func (b *DescriptorBuilder) uri(c MavenCoordinate) OptionalString {
	group, ok := c.GroupID.Get()
	if !ok {
		return None()
	}
	artifact, ok := c.ArtifactID.Get()
	if !ok {
		return None()
	}
	version, ok := c.Version.Get()
	if !ok {
		return None()
	}

	var sb strings.Builder
	sb.WriteString(b.repositoryURL)
	sb.WriteString(strings.ReplaceAll(group, ".", "/"))
	sb.WriteByte('/')
	sb.WriteString(artifact)
	sb.WriteByte('/')
	sb.WriteString(version)
	return Some(sb.String())
}

func annotationsFor(c MavenCoordinate) Annotations {
	var a Annotations
	if v, ok := c.Type.NonBlank(); ok {
		a = a.With(AnnotationType, v)
	}
	if v, ok := c.Scope.NonBlank(); ok {
		a = a.With(AnnotationScope, v)
	}
	return a
}
