// Package mvnlist reads Maven coordinates from the output of
// `mvn dependency:list` and `mvn dependency:resolve`.
package mvnlist

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	logPrefix    = "[INFO]"
	moduleSuffix = " -- "
	optionalMark = "(optional)"
)

// Parse extracts coordinates from dependency plugin output. Lines that do not describe
// a dependency (banners, headers, blank lines) are skipped.
//
// Accepted entry forms, each indented under the plugin header:
//
//	groupId:artifactId:type:version:scope
//	groupId:artifactId:type:classifier:version:scope
//	either of the above followed by :/absolute/path/to/file
func Parse(r io.Reader) ([]domain.MavenCoordinate, error) {
	var coords []domain.MavenCoordinate

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if c, ok := parseLine(scanner.Text()); ok {
			coords = append(coords, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency list")
	}
	return coords, nil
}

func parseLine(line string) (domain.MavenCoordinate, bool) {
	line = strings.TrimPrefix(line, logPrefix)
	// Entries are indented; headers such as "The following files have been resolved:" are not.
	if !strings.HasPrefix(line, "   ") {
		return domain.MavenCoordinate{}, false
	}

	line = strings.TrimSpace(line)
	if i := strings.Index(line, moduleSuffix); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, optionalMark))

	parts := strings.Split(line, ":")
	switch {
	case len(parts) < 5:
		return domain.MavenCoordinate{}, false
	case len(parts) == 5:
		return coordinate(parts[0], parts[1], parts[2], parts[3], parts[4]), true
	case len(parts) == 6 && !looksLikePath(parts[5]):
		return coordinate(parts[0], parts[1], parts[2], parts[4], parts[5]), true
	case looksLikePath(parts[5]):
		return coordinate(parts[0], parts[1], parts[2], parts[3], parts[4]), true
	default:
		// Classifier form followed by a file path, which may itself contain colons.
		return coordinate(parts[0], parts[1], parts[2], parts[4], parts[5]), true
	}
}

// looksLikePath reports whether a segment is the start of an artifact file path.
// On Windows the drive letter is split off by the colon, leaving a segment such as `\Users`.
func looksLikePath(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, `\`) || (len(s) == 1 && isLetter(s[0]))
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func coordinate(group, artifact, typ, version, scope string) domain.MavenCoordinate {
	return domain.MavenCoordinate{
		GroupID:    optional(group),
		ArtifactID: optional(artifact),
		Version:    optional(version),
		Type:       optional(typ),
		Scope:      optional(scope),
	}
}

func optional(s string) domain.OptionalString {
	if s == "" {
		return domain.None()
	}
	return domain.Some(s)
}
