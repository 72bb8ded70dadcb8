package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/nzfcc/internal/codegen"
	"github.com/ginjaninja78/nzfcc/internal/config"
	"github.com/ginjaninja78/nzfcc/internal/logger"
	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `[
  {"_id": "nzfcc_001", "name": "Cafes and restaurants",
   "groups": {"personal_finance": {"_id": "group_01", "name": "Lifestyle"}}},
  {"_id": "nzfcc_002", "name": "Fuel",
   "groups": {"personal_finance": {"_id": "group_02", "name": "Transport"}}}
]`

func setup(t *testing.T, doc string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.SnapshotPath = filepath.Join(dir, "categories.json")
	cfg.OutputDir = filepath.Join(dir, "pkg", "nzfcc")
	require.NoError(t, os.WriteFile(cfg.SnapshotPath, []byte(doc), 0o644))
	return cfg
}

func TestRun_WritesBothFiles(t *testing.T) {
	cfg := setup(t, snapshot)

	result := New(cfg, logger.Nop()).Run()
	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Stats.Groups)
	assert.Equal(t, 2, result.Stats.Codes)
	assert.Positive(t, result.Stats.Bytes)

	require.Equal(t, []string{
		filepath.Join(cfg.OutputDir, "category_groups_gen.go"),
		filepath.Join(cfg.OutputDir, "nzfcc_codes_gen.go"),
	}, result.OutputFiles)

	groups, err := os.ReadFile(result.OutputFiles[0])
	require.NoError(t, err)
	assert.Contains(t, string(groups), "GroupLifestyle CategoryGroup = iota + 1")
	assert.Contains(t, string(groups), "from categories.json; DO NOT EDIT.")

	codes, err := os.ReadFile(result.OutputFiles[1])
	require.NoError(t, err)
	assert.Contains(t, string(codes), "group: GroupTransport}")
}

func TestRun_Deterministic(t *testing.T) {
	cfg := setup(t, snapshot)

	first := New(cfg, logger.Nop()).Run()
	require.NoError(t, first.Error)
	before, err := os.ReadFile(first.OutputFiles[1])
	require.NoError(t, err)

	second := New(cfg, logger.Nop()).Run()
	require.NoError(t, second.Error)
	after, err := os.ReadFile(second.OutputFiles[1])
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestRun_DryRun(t *testing.T) {
	cfg := setup(t, snapshot)

	conv := New(cfg, logger.Nop())
	conv.DryRun = true
	result := conv.Run()

	require.NoError(t, result.Error)
	assert.Equal(t, []string{"category_groups_gen.go", "nzfcc_codes_gen.go"}, result.OutputFiles)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRun_ParseErrorWritesNothing(t *testing.T) {
	cfg := setup(t, `[{"_id": "nzfcc_001", "name": "Fuel", "extra": true,
	  "groups": {"personal_finance": {"_id": "group_01", "name": "Transport"}}}]`)

	result := New(cfg, logger.Nop()).Run()
	assert.False(t, result.Success)

	var perr *taxonomy.SnapshotParseError
	assert.True(t, errors.As(result.Error, &perr), "got %v", result.Error)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRun_CollisionWritesNothing(t *testing.T) {
	cfg := setup(t, `[
	  {"_id": "nzfcc_001", "name": "A B", "groups": {"personal_finance": {"_id": "group_01", "name": "G"}}},
	  {"_id": "nzfcc_002", "name": "A-B", "groups": {"personal_finance": {"_id": "group_01", "name": "G"}}}]`)

	result := New(cfg, logger.Nop()).Run()
	assert.False(t, result.Success)

	var dup *codegen.DuplicateIdentifierError
	assert.True(t, errors.As(result.Error, &dup), "got %v", result.Error)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRun_KeepsPreviousOutputOnFailure(t *testing.T) {
	cfg := setup(t, snapshot)
	first := New(cfg, logger.Nop()).Run()
	require.NoError(t, first.Error)
	before, err := os.ReadFile(first.OutputFiles[0])
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(cfg.SnapshotPath, []byte(`[]`), 0o644))
	second := New(cfg, logger.Nop()).Run()
	require.Error(t, second.Error)

	after, err := os.ReadFile(first.OutputFiles[0])
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
