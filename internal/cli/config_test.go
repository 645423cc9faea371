package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/justify/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point XDG at an empty dir so no real user config leaks in.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, cfg.Width)
	assert.Equal(t, apperrors.AlgorithmOptimal, cfg.Algorithm)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 72\nalgorithm = \"greedy\"\n"), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, apperrors.AlgorithmGreedy, cfg.Algorithm)
}

func TestLoadConfigPartialFile(t *testing.T) {
	// Unset keys keep their built-in defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 40\n"), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, apperrors.AlgorithmOptimal, cfg.Algorithm)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeFileNotFound))
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, cfg.Width)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = = 40"), 0644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig))
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code apperrors.Code
	}{
		{"zero width", "width = 0", apperrors.ErrCodeInvalidWidth},
		{"negative width", "width = -4", apperrors.ErrCodeInvalidWidth},
		{"unknown algorithm", "algorithm = \"balanced\"", apperrors.ErrCodeInvalidAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.toml), 0644))

			_, err := loadConfig(path)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.code))
		})
	}
}

func TestResolveOptions(t *testing.T) {
	cfg := Config{Width: 60, Algorithm: apperrors.AlgorithmOptimal}

	t.Run("flags win over config", func(t *testing.T) {
		width, algorithm, err := resolveOptions(cfg, 30, apperrors.AlgorithmGreedy)
		require.NoError(t, err)
		assert.Equal(t, 30, width)
		assert.Equal(t, apperrors.AlgorithmGreedy, algorithm)
	})

	t.Run("zero flags keep config", func(t *testing.T) {
		width, algorithm, err := resolveOptions(cfg, 0, "")
		require.NoError(t, err)
		assert.Equal(t, 60, width)
		assert.Equal(t, apperrors.AlgorithmOptimal, algorithm)
	})

	t.Run("invalid flag width", func(t *testing.T) {
		_, _, err := resolveOptions(cfg, -1, "")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidWidth))
	})

	t.Run("invalid flag algorithm", func(t *testing.T) {
		_, _, err := resolveOptions(cfg, 0, "fastest")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidAlgorithm))
	})
}
