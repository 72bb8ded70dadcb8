package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pkg", "nzfcc")
	fm := NewFileManager(dir)

	paths, err := fm.WriteFiles(
		OutputFile{Name: "a_gen.go", Data: []byte("package a\n")},
		OutputFile{Name: "b_gen.go", Data: []byte("package b\n")},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a_gen.go"), filepath.Join(dir, "b_gen.go")}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not remain")
}

func TestWriteFiles_ReplacesExisting(t *testing.T) {
	fm := NewFileManager(t.TempDir())

	_, err := fm.WriteFile("gen.go", []byte("old"))
	require.NoError(t, err)
	path, err := fm.WriteFile("gen.go", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFiles_InvalidNameWritesNothing(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(dir)

	_, err := fm.WriteFiles(
		OutputFile{Name: "ok_gen.go", Data: []byte("ok")},
		OutputFile{Name: "../escape.go", Data: []byte("nope")},
	)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFiles_KeepsPreviousGenerationOnFailure(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(dir)

	_, err := fm.WriteFile("a_gen.go", []byte("old"))
	require.NoError(t, err)
	// A directory where the second file should go cannot be replaced.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b_gen.go", "sub"), 0o755))

	_, err = fm.WriteFiles(
		OutputFile{Name: "a_gen.go", Data: []byte("new")},
		OutputFile{Name: "b_gen.go", Data: []byte("new")},
	)
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not remain")
}

func TestWriteFiles_ReplacesEveryFile(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(dir)

	_, err := fm.WriteFiles(
		OutputFile{Name: "a_gen.go", Data: []byte("a1")},
		OutputFile{Name: "b_gen.go", Data: []byte("b1")},
	)
	require.NoError(t, err)
	_, err = fm.WriteFiles(
		OutputFile{Name: "a_gen.go", Data: []byte("a2")},
		OutputFile{Name: "b_gen.go", Data: []byte("b2")},
	)
	require.NoError(t, err)

	for name, want := range map[string]string{"a_gen.go": "a2", "b_gen.go": "b2"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "backups must not remain")
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("nzfcc_{timestamp}_{uuid}.xlsx", nil)
	assert.Regexp(t,
		regexp.MustCompile(`^nzfcc_\d{8}_\d{6}_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.xlsx$`),
		name)

	assert.Regexp(t, `^report_\d{4}-\d{2}-\d{2}_v2\.xlsx$`,
		GenerateOutputFileName("report_{date}_{version}.xlsx", map[string]string{"version": "v2"}))

	assert.NotEqual(t,
		GenerateOutputFileName("{uuid}", nil),
		GenerateOutputFileName("{uuid}", nil))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
