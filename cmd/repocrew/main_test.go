package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repocrew/internal/config"
)

func TestVersionString(t *testing.T) {
	s := versionString()
	assert.Contains(t, s, "repocrew")
	assert.Contains(t, s, version)
	assert.Contains(t, s, commit)
	assert.Contains(t, s, date)
}

func TestNewFormatter(t *testing.T) {
	f, err := newFormatter("markdown")
	require.NoError(t, err)
	assert.NotNil(t, f)

	f, err = newFormatter("json")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = newFormatter("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestResolveStagingDirPrecedence(t *testing.T) {
	origStaging := stagingFlag
	t.Cleanup(func() { stagingFlag = origStaging })

	cfg := config.DefaultConfig()
	cfg.Pipeline.StagingDir = "/tmp/from-config"

	stagingFlag = "/tmp/from-flag"
	dir, err := resolveStagingDir(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag", dir)

	stagingFlag = ""
	dir, err = resolveStagingDir(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-config", dir)

	cfg.Pipeline.StagingDir = ""
	dir, err = resolveStagingDir(cfg)
	require.NoError(t, err)
	assert.Contains(t, dir, filepath.Join("repocrew", "staging"))
}

func TestHistoryDBPathFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Pipeline.HistoryDB = "/tmp/custom.db"

	path, err := historyDBPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)
}
