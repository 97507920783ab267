// Package pom reads Maven coordinates from pom.xml files.
package pom

import (
	"context"
	"encoding/xml"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CoordinateReader = (*Reader)(nil)

// maxInterpolationDepth bounds property references that point at other properties.
const maxInterpolationDepth = 8

var placeholderRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Reader implements ports.CoordinateReader for pom.xml files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the pom.xml at path and returns its declared dependencies.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.MavenCoordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read pom"), "path", path)
	}

	coords, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return coords, nil
}

// Parse extracts the dependencies of a POM document. Versions omitted by a dependency
// are taken from <dependencyManagement>, and ${...} placeholders are resolved from
// <properties> and the project coordinate. Unresolvable placeholders are kept verbatim.
func Parse(data []byte) ([]domain.MavenCoordinate, error) {
	var p project
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pom")
	}

	in := newInterpolator(&p)

	managed := make(map[string]dependency, len(p.Managed))
	for _, m := range p.Managed {
		managed[managementKey(in, m)] = m
	}

	coords := make([]domain.MavenCoordinate, 0, len(p.Dependencies))
	for _, dep := range p.Dependencies {
		if m, ok := managed[managementKey(in, dep)]; ok {
			if dep.Version == nil {
				dep.Version = m.Version
			}
			if dep.Scope == nil {
				dep.Scope = m.Scope
			}
		}

		coords = append(coords, domain.MavenCoordinate{
			GroupID:    in.field(dep.GroupID),
			ArtifactID: in.field(dep.ArtifactID),
			Version:    in.field(dep.Version),
			Type:       in.field(dep.Type),
			Scope:      in.field(dep.Scope),
		})
	}
	return coords, nil
}

func managementKey(in *interpolator, d dependency) string {
	return in.field(d.GroupID).String() + ":" + in.field(d.ArtifactID).String()
}

type interpolator struct {
	values map[string]string
}

func newInterpolator(p *project) *interpolator {
	values := make(map[string]string, len(p.Properties)+8)
	for k, v := range p.Properties {
		values[k] = strings.TrimSpace(v)
	}

	setFirst := func(keys []string, candidates ...*string) {
		for _, c := range candidates {
			if c != nil {
				for _, k := range keys {
					values[k] = strings.TrimSpace(*c)
				}
				return
			}
		}
	}
	setFirst([]string{"project.groupId", "pom.groupId"}, p.GroupID, p.Parent.GroupID)
	setFirst([]string{"project.artifactId", "pom.artifactId"}, p.ArtifactID)
	setFirst([]string{"project.version", "pom.version", "version"}, p.Version, p.Parent.Version)
	setFirst([]string{"project.parent.groupId"}, p.Parent.GroupID)
	setFirst([]string{"project.parent.artifactId"}, p.Parent.ArtifactID)
	setFirst([]string{"project.parent.version"}, p.Parent.Version)

	return &interpolator{values: values}
}

// field trims and interpolates a present element and keeps absence.
func (in *interpolator) field(s *string) domain.OptionalString {
	if s == nil {
		return domain.None()
	}
	return domain.Some(in.expand(strings.TrimSpace(*s)))
}

func (in *interpolator) expand(s string) string {
	for range maxInterpolationDepth {
		if !strings.Contains(s, "${") {
			return s
		}
		expanded := placeholderRegex.ReplaceAllStringFunc(s, func(m string) string {
			if v, ok := in.values[m[2:len(m)-1]]; ok {
				return v
			}
			return m
		})
		if expanded == s {
			return s
		}
		s = expanded
	}
	return s
}
