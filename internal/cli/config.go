package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/justify/pkg/errors"
)

// Config holds user defaults loaded from the TOML config file. Flags always
// win over config values; config values win over built-in defaults.
type Config struct {
	Width     int    `toml:"width"`
	Algorithm string `toml:"algorithm"`
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() Config {
	return Config{
		Width:     defaultWidth,
		Algorithm: apperrors.AlgorithmOptimal,
	}
}

// loadConfig reads the config file at path, falling back to the default
// location ($XDG_CONFIG_HOME/justify/config.toml) when path is empty.
// A missing file at the default location yields the built-in defaults; an
// explicitly requested file that does not exist is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := apperrors.ValidateWidth(cfg.Width); err != nil {
		return cfg, err
	}
	if err := apperrors.ValidateAlgorithm(cfg.Algorithm); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configDir returns the config directory using the XDG standard
// (~/.config/justify/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveOptions merges flag values over config values and validates the
// result. Zero/empty flag values mean "not set on the command line".
func resolveOptions(cfg Config, flagWidth int, flagAlgorithm string) (width int, algorithm string, err error) {
	width = cfg.Width
	if flagWidth != 0 {
		width = flagWidth
	}
	algorithm = cfg.Algorithm
	if flagAlgorithm != "" {
		algorithm = flagAlgorithm
	}

	if err := apperrors.ValidateWidth(width); err != nil {
		return 0, "", err
	}
	if err := apperrors.ValidateAlgorithm(algorithm); err != nil {
		return 0, "", err
	}
	return width, algorithm, nil
}
