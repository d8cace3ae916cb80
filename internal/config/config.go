// Package config loads fluxbase's optional user defaults from
// $HOME/.fluxbase/config.yaml via spf13/viper, following the same
// AddConfigPath/SetDefault pattern the router config in this
// codebase's ancestry uses. A missing config file is not an error;
// fluxbase runs fine on its built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fluxbase/fluxbase/internal/errs"
	"github.com/fluxbase/fluxbase/internal/xlog"
)

var log = xlog.Get()

// Defaults holds the values a fresh fluxbase invocation falls back to
// when the corresponding flag was not passed on the command line.
type Defaults struct {
	BlockSize     int
	CharsetPreset string
	Progress      bool
	MaxRate       int
}

// DirName is the directory under $HOME that holds fluxbase's config.
const DirName = ".fluxbase"

func setDefaults(v *viper.Viper) {
	v.SetDefault("block_size", 8)
	v.SetDefault("charset_preset", "base64")
	v.SetDefault("progress", false)
	v.SetDefault("max_rate", 0)
}

// Dir returns the fluxbase config directory, $HOME/.fluxbase.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errs.WrapIO(err, "failed to resolve home directory")
	}
	return filepath.Join(home, DirName), nil
}

// Load reads $HOME/.fluxbase/config.yaml, if present, layered over
// built-in defaults, and returns the resulting Defaults. A missing
// file is not an error; a malformed one is a ConfigError.
func Load() (Defaults, error) {
	v := viper.New()
	setDefaults(v)

	dir, err := Dir()
	if err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Defaults{}, errs.Config("failed to read config file: %v", err)
		}
		log.Debug("no fluxbase config file found, using built-in defaults")
	}

	return Defaults{
		BlockSize:     v.GetInt("block_size"),
		CharsetPreset: v.GetString("charset_preset"),
		Progress:      v.GetBool("progress"),
		MaxRate:       v.GetInt("max_rate"),
	}, nil
}
