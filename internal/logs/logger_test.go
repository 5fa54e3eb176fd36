package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	require.NoError(t, Initialize("", "debug"))
	assert.Nil(t, logFile)
}

func TestInitialize_WritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	require.NoError(t, Initialize(dir, "debug"))
	t.Cleanup(func() { Close() })

	log := Component("test")
	log.Info().Str("item", "Quiz 1").Msg("added")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"item":"Quiz 1"`)
}

func TestInitialize_BadLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, "loud"))
	t.Cleanup(func() { Close() })

	log := Component("test")
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
