package dsense_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlangtools/dsense"
)

func TestDirFind(t *testing.T) {
	src := dsense.MustDir("testdata")

	r, path, err := src.Find("pets.animal")
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck

	assert.True(t, strings.HasSuffix(filepath.ToSlash(path), "pets/animal.d"))
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(content), "module pets.animal;")
}

func TestDirFindPackageForm(t *testing.T) {
	src := dsense.MustDir("testdata")

	_, path, err := src.Find("util")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filepath.ToSlash(path), "util/package.d"))
}

func TestDirFindMissing(t *testing.T) {
	src := dsense.MustDir("testdata")

	_, _, err := src.Find("no.such.module")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirRejectsFiles(t *testing.T) {
	_, err := dsense.Dir("testdata/geometry.d")
	assert.Error(t, err)
}

func TestDirListFilesWalksTree(t *testing.T) {
	src := dsense.MustDir("testdata")

	files, err := src.ListFiles()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.ToSlash(f))
	}
	assert.Contains(t, names, "testdata/geometry.d")
	assert.Contains(t, names, "testdata/pets/dog.d")
	assert.Contains(t, names, "testdata/util/package.d")
}

func TestMultiTriesSourcesInOrder(t *testing.T) {
	extra := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(extra, "geometry.d"),
		[]byte("module geometry; int shadowed;\n"), 0o644))

	src := dsense.Multi(dsense.MustDir(extra), dsense.MustDir("testdata"))

	_, path, err := src.Find("geometry")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, extra))

	_, path, err = src.Find("pets.dog")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filepath.ToSlash(path), "pets/dog.d"))
}

func TestWithExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "custom.dd"),
		[]byte("module custom;\n"), 0o644))

	src := dsense.MustDir(dir, dsense.WithExtensions(".dd"))
	_, _, err := src.Find("custom")
	require.NoError(t, err)

	files, err := src.ListFiles()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLoadBuildsContext(t *testing.T) {
	ctx, err := dsense.Load(`
module app;

import pets.dog;

class Puppy : Dog {
}
`, dsense.MustDir("testdata"))
	require.NoError(t, err)

	// Inheritance flattens across the loaded files: Puppy -> Dog -> Animal.
	members := ctx.MembersOfType("Puppy")
	assert.Equal(t, "void", members["bark"].Type)
	assert.Equal(t, "bool", members["goodBoy"].Type)
	assert.Equal(t, "string", members["name"].Type)
	assert.Equal(t, dsense.KindMethod, members["describe"].Kind)
	assert.Contains(t, members, "classInfo")

	// Free functions from auxiliary modules show up in call tips.
	tips := ctx.CallTipsFor("", "distance", 0)
	assert.Equal(t, []string{"double distance(Vec2 a, Vec2 b)"}, tips)
}

func TestLoadSkipsBinaryFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "lib.d"),
		[]byte("module lib; int fromLib;\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "junk.d"),
		[]byte{0x7f, 'E', 'L', 'F', 0, 0, 0, 1}, 0o644))

	ctx, err := dsense.Load("module app;", dsense.MustDir(dir))
	require.NoError(t, err)

	require.Len(t, ctx.Auxiliary, 1)
	assert.Equal(t, "lib", ctx.Auxiliary[0].Name)
}

func TestLoadRequiresASource(t *testing.T) {
	_, err := dsense.Load("module app;", nil)
	assert.ErrorIs(t, err, dsense.ErrNoSources)
}
