package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectHasher = (*Hasher)(nil)

// Hasher fingerprints the Maven build files of a project tree.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker, ignores: DefaultIgnores}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint hashes every build file under dir: each pom.xml and the .mvn configuration.
// Paths are hashed relative to dir so a moved checkout keeps its fingerprint.
func (h *Hasher) Fingerprint(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat project"), "path", dir)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.New("project is not a directory"), "path", dir)
	}

	hasher := xxhash.New()
	found := false
	for path, err := range h.walker.WalkFiles(dir, h.ignores) {
		if err != nil {
			return "", err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if !isBuildFile(rel) {
			continue
		}
		found = true

		if err := h.hashFile(path, filepath.ToSlash(rel), hasher); err != nil {
			return "", err
		}
	}

	if !found {
		return "", zerr.With(zerr.New("no pom.xml found"), "path", dir)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func isBuildFile(rel string) bool {
	if filepath.Base(rel) == "pom.xml" {
		return true
	}
	return strings.HasPrefix(filepath.ToSlash(rel), ".mvn/")
}

func (h *Hasher) hashFile(path, name string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(name))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
