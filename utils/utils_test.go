package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfStringIgnoresCase(t *testing.T) {
	values := []string{"all", "january", "february"}

	assert.Equal(t, 1, IndexOfString("JANUARY", values))
	assert.Equal(t, 0, IndexOfString("All", values))
	assert.Equal(t, -1, IndexOfString("march", values))
	assert.Equal(t, -1, IndexOfString(" january", values))
	assert.Equal(t, 2, IndexOfString("February", values))
	assert.Equal(t, -1, IndexOfString("", values))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: info\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
