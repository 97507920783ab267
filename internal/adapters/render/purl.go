package render

import (
	"bufio"
	"io"

	"github.com/package-url/packageurl-go"
	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultMavenType is the packaging implied by a Maven purl without a type qualifier.
const defaultMavenType = "jar"

// PURLEncoder writes one Package URL per Maven descriptor.
type PURLEncoder struct{}

// NewPURLEncoder creates a new PURLEncoder.
func NewPURLEncoder() *PURLEncoder {
	return &PURLEncoder{}
}

// Encode implements ports.DescriptorEncoder.
func (e *PURLEncoder) Encode(w io.Writer, descriptors []domain.Descriptor) error {
	bw := bufio.NewWriter(w)
	for _, d := range descriptors {
		maven, ok := d.(*domain.MavenArtifactResourceDescriptor)
		if !ok {
			return zerr.With(domain.ErrUnsupportedDescriptor, "kind", string(d.Kind()))
		}

		purl, err := PackageURL(maven.Coordinate())
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(purl + "\n"); err != nil {
			return zerr.Wrap(err, "failed to write package url")
		}
	}
	return bw.Flush()
}

// PackageURL renders a coordinate as a pkg:maven Package URL.
// Maven purls require a namespace, so both groupId and artifactId must be non-blank.
// The type is only qualified when it differs from jar.
func PackageURL(c domain.MavenCoordinate) (string, error) {
	namespace, ok := c.GroupID.NonBlank()
	if !ok {
		return "", zerr.With(domain.ErrMalformedCoordinate, "coordinate", c.String())
	}
	name, ok := c.ArtifactID.NonBlank()
	if !ok {
		return "", zerr.With(domain.ErrMalformedCoordinate, "coordinate", c.String())
	}

	var qualifiers packageurl.Qualifiers
	if typ, ok := c.Type.NonBlank(); ok && typ != defaultMavenType {
		qualifiers = packageurl.QualifiersFromMap(map[string]string{"type": typ})
	}

	purl := packageurl.NewPackageURL(
		packageurl.TypeMaven,
		namespace,
		name,
		c.Version.String(),
		qualifiers,
		"")
	return purl.ToString(), nil
}
