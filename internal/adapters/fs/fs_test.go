package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attest/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	// Structure:
	// tmp/
	//   .git/config
	//   target/classes/App.class
	//   src/main/java/App.java
	//   pom.xml
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "target", "classes", "App.class"), "bytecode")
	writeFile(t, filepath.Join(tmpDir, "src", "main", "java", "App.java"), "class App {}")
	writeFile(t, filepath.Join(tmpDir, "pom.xml"), "<project/>")

	var files []string
	for path, err := range fs.NewWalker().WalkFiles(tmpDir, fs.DefaultIgnores) {
		require.NoError(t, err)
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files = append(files, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"pom.xml", "src/main/java/App.java"}, files)
}

func TestWalker_WalkFiles_EarlyExit(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "a")
	writeFile(t, filepath.Join(tmpDir, "b"), "b")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	var errs []error
	for path, err := range fs.NewWalker().WalkFiles(missing, nil) {
		assert.Equal(t, missing, path)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestHasher_Fingerprint_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), "<project/>")
	locked := filepath.Join(dir, "module")
	writeFile(t, filepath.Join(locked, "pom.xml"), "<project/>")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	_, err := fs.NewHasher(fs.NewWalker()).Fingerprint(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestHasher_Fingerprint(t *testing.T) {
	project := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "pom.xml"), "<project><artifactId>parent</artifactId></project>")
		writeFile(t, filepath.Join(dir, "core", "pom.xml"), "<project><artifactId>core</artifactId></project>")
		writeFile(t, filepath.Join(dir, ".mvn", "maven.config"), "-Drevision=1.0")
		writeFile(t, filepath.Join(dir, "core", "src", "Main.java"), "class Main {}")
		return dir
	}

	hasher := fs.NewHasher(fs.NewWalker())

	t.Run("stable across checkouts", func(t *testing.T) {
		a, err := hasher.Fingerprint(project(t))
		require.NoError(t, err)
		b, err := hasher.Fingerprint(project(t))
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("ignores sources and target", func(t *testing.T) {
		dir := project(t)
		before, err := hasher.Fingerprint(dir)
		require.NoError(t, err)

		writeFile(t, filepath.Join(dir, "core", "src", "Main.java"), "class Main { int x; }")
		writeFile(t, filepath.Join(dir, "target", "pom.xml"), "<project/>")

		after, err := hasher.Fingerprint(dir)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("changes with module pom", func(t *testing.T) {
		dir := project(t)
		before, err := hasher.Fingerprint(dir)
		require.NoError(t, err)

		writeFile(t, filepath.Join(dir, "core", "pom.xml"), "<project><artifactId>core2</artifactId></project>")

		after, err := hasher.Fingerprint(dir)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("changes with maven config", func(t *testing.T) {
		dir := project(t)
		before, err := hasher.Fingerprint(dir)
		require.NoError(t, err)

		writeFile(t, filepath.Join(dir, ".mvn", "maven.config"), "-Drevision=2.0")

		after, err := hasher.Fingerprint(dir)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("errors without pom", func(t *testing.T) {
		_, err := hasher.Fingerprint(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no pom.xml found")
	})

	t.Run("errors on file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pom.xml")
		writeFile(t, path, "<project/>")
		_, err := hasher.Fingerprint(path)
		require.Error(t, err)
	})
}
