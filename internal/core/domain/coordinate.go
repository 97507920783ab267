package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// MavenCoordinate is the raw coordinate of a Maven dependency as read from a
// dependency declaration. Every field may be absent.
type MavenCoordinate struct {
	// GroupID is the dotted namespace (e.g., "org.apache.commons").
	GroupID OptionalString `json:"groupId,omitzero"`

	// ArtifactID is the artifact name within the group (e.g., "commons-lang3").
	ArtifactID OptionalString `json:"artifactId,omitzero"`

	// Version is the dependency version (e.g., "3.12.0").
	Version OptionalString `json:"version,omitzero"`

	// Type is the packaging type (e.g., "jar", "pom").
	Type OptionalString `json:"type,omitzero"`

	// Scope is the dependency scope (e.g., "compile", "test").
	Scope OptionalString `json:"scope,omitzero"`
}

// String renders groupId:artifactId:version with absent parts left empty.
func (c MavenCoordinate) String() string {
	return c.GroupID.String() + ":" + c.ArtifactID.String() + ":" + c.Version.String()
}

const (
	minCoordinateParts = 3
	maxCoordinateParts = 5
)

// ParseCoordinate parses a coordinate literal of the form
// groupId:artifactId:version[:type[:scope]]. Empty segments are absent.
func ParseCoordinate(s string) (MavenCoordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < minCoordinateParts || len(parts) > maxCoordinateParts {
		return MavenCoordinate{}, zerr.With(ErrMalformedCoordinate, "coordinate", s)
	}

	fields := make([]OptionalString, maxCoordinateParts)
	for i, p := range parts {
		if p != "" {
			fields[i] = Some(p)
		}
	}

	return MavenCoordinate{
		GroupID:    fields[0],
		ArtifactID: fields[1],
		Version:    fields[2],
		Type:       fields[3],
		Scope:      fields[4],
	}, nil
}
