package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveQuotedTriesIncluderDirFirst(t *testing.T) {
	includerDir := t.TempDir()
	searchDir := t.TempDir()
	local := writeFile(t, includerDir, "foo.h", "local\n")
	writeFile(t, searchDir, "foo.h", "searched\n")

	r := NewResolver([]string{searchDir})
	resolved, ok := r.Resolve("foo.h", false, includerDir)

	require.True(t, ok)
	assert.Equal(t, Canonicalize(local), resolved)
}

func TestResolveAngledNeverTriesIncluderDir(t *testing.T) {
	includerDir := t.TempDir()
	writeFile(t, includerDir, "foo.h", "local\n")

	r := NewResolver(nil)
	_, ok := r.Resolve("foo.h", true, includerDir)

	assert.False(t, ok)
}

func TestResolveSearchPathOrder(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	first := writeFile(t, d1, "foo.h", "first\n")
	writeFile(t, d2, "foo.h", "second\n")

	r := NewResolver([]string{d1, d2})
	resolved, ok := r.Resolve("foo.h", true, "")

	require.True(t, ok)
	assert.Equal(t, Canonicalize(first), resolved)
}

func TestResolveMissReportsNotFoundWithoutError(t *testing.T) {
	r := NewResolver([]string{t.TempDir()})

	resolved, ok := r.Resolve("no-such-header.h", true, "")

	assert.False(t, ok)
	assert.Empty(t, resolved)
}

func TestResolveSkipsDirectories(t *testing.T) {
	searchDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(searchDir, "foo.h"), 0o755))

	r := NewResolver([]string{searchDir})
	_, ok := r.Resolve("foo.h", true, "")

	assert.False(t, ok)
}

func TestResolveCollapsesSymlinkSpellings(t *testing.T) {
	tmpDir := t.TempDir()
	real := writeFile(t, tmpDir, "real.h", "x\n")
	link := filepath.Join(tmpDir, "alias")
	require.NoError(t, os.Symlink(tmpDir, link))

	r := NewResolver([]string{link})
	resolved, ok := r.Resolve("real.h", true, "")

	require.True(t, ok)
	assert.Equal(t, Canonicalize(real), resolved)
}

func TestCanonicalizeCollapsesRelativeSegments(t *testing.T) {
	tmpDir := t.TempDir()
	real := writeFile(t, tmpDir, "foo.h", "x\n")
	spelled := filepath.Join(tmpDir, "sub", "..", "foo.h")

	assert.Equal(t, Canonicalize(real), Canonicalize(spelled))
}

func TestResolveRoot(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "a.h", "x\n")

	resolved, err := ResolveRoot(path)
	require.NoError(t, err)
	assert.Equal(t, Canonicalize(path), resolved)

	_, err = ResolveRoot(filepath.Join(tmpDir, "missing.h"))
	assert.Error(t, err)

	_, err = ResolveRoot(tmpDir)
	assert.Error(t, err)
}

func TestResolveSearchDirs(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()

	resolved, err := ResolveSearchDirs([]string{d1, d2})
	require.NoError(t, err)
	assert.Equal(t, []string{Canonicalize(d1), Canonicalize(d2)}, resolved)

	_, err = ResolveSearchDirs([]string{filepath.Join(d1, "missing")})
	assert.Error(t, err)
}
