package domain

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind identifies how coordinates are read from an input.
type SourceKind string

const (
	// SourcePOM is a pom.xml file.
	SourcePOM SourceKind = "pom"
	// SourceDependencyList is captured output of mvn dependency:list or dependency:resolve.
	SourceDependencyList SourceKind = "dependency-list"
	// SourceMavenProject is a directory containing a Maven project.
	SourceMavenProject SourceKind = "maven-project"
	// SourceCoordinate is a literal coordinate given on the command line.
	SourceCoordinate SourceKind = "coordinate"
)

// Source is a single input to describe.
type Source struct {
	Kind SourceKind
	// Arg is the path or coordinate literal as given by the user.
	Arg string
}

// StatFunc reports file information for a path, as os.Stat does.
type StatFunc func(name string) (fs.FileInfo, error)

// DetectSource classifies an input argument. Existing paths win over coordinate literals.
func DetectSource(arg string, stat StatFunc) (Source, error) {
	if info, err := stat(arg); err == nil {
		switch {
		case info.IsDir():
			return Source{Kind: SourceMavenProject, Arg: arg}, nil
		case isPOMFile(arg):
			return Source{Kind: SourcePOM, Arg: arg}, nil
		default:
			return Source{Kind: SourceDependencyList, Arg: arg}, nil
		}
	}

	if strings.Count(arg, ":") >= minCoordinateParts-1 {
		return Source{Kind: SourceCoordinate, Arg: arg}, nil
	}

	return Source{}, zerr.With(ErrUnknownSource, "input", arg)
}

func isPOMFile(path string) bool {
	base := filepath.Base(path)
	return base == "pom.xml" || strings.HasSuffix(base, ".pom")
}
