package dsense

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFlagPaths(t *testing.T) {
	paths := importFlagPaths(`-I/usr/include/phobos -O -release -I"/quoted" -I%@P%/../phobos -I`)
	assert.Equal(t, []string{"/usr/include/phobos", "/quoted"}, paths)

	assert.Empty(t, importFlagPaths(""))
	assert.Empty(t, importFlagPaths("-O -release -w"))
}

func TestImportPathsFromConfig(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "dmd.conf")
	require.NoError(t, os.WriteFile(conf, []byte(`
; dmd.conf
[Environment]
# placeholders cannot be expanded, the second flag survives
DFLAGS=-I%@P%/../phobos -I/opt/phobos
DFLAGS=-I/opt/druntime -L-lrt
`), 0o644))

	paths := importPathsFromConfig(conf)
	assert.Equal(t, []string{"/opt/phobos", "/opt/druntime"}, paths)

	assert.Empty(t, importPathsFromConfig(filepath.Join(t.TempDir(), "missing.conf")))
}

func TestDedupAndFilter(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b"}, dedup([]string{"/a", "/b", "/a", "/a"}))

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	got := filterExistingDirs([]string{dir, file, "/no/such/dir"})
	assert.Equal(t, []string{dir}, got)
}

func TestDiscoverImportPathsReadsDFLAGS(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DFLAGS", "-I"+dir)

	assert.Contains(t, DiscoverImportPaths(), dir)
}
