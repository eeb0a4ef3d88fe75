// Package config loads settings from defaults, an optional YAML file and
// WIITDB_ environment variables, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix is stripped from environment variables before mapping
	// WIITDB_SOURCE_URL to source.url.
	EnvPrefix = "WIITDB_"

	DefaultURL     = "http://www.gametdb.com/wiitdb.zip?LANG=EN&GAMECUBE=1"
	DefaultTimeout = 2 * time.Minute
	DefaultRetries = 3
)

type Configuration struct {
	Cache    CacheConfig    `koanf:"cache"`
	Source   SourceConfig   `koanf:"source"`
	Resolver ResolverConfig `koanf:"resolver"`
	Log      LogConfig      `koanf:"log"`
}

type CacheConfig struct {
	Path string `koanf:"path"`
}

// SourceConfig selects where the database comes from. Path, when set, wins
// over URL.
type SourceConfig struct {
	URL     string        `koanf:"url"`
	Path    string        `koanf:"path"`
	Timeout time.Duration `koanf:"timeout"`
	Retries int           `koanf:"retries"`
}

type ResolverConfig struct {
	// Denylist adds labels to the built-in denylist.
	Denylist []string `koanf:"denylist"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"cache.path":        "",
		"source.url":        DefaultURL,
		"source.path":       "",
		"source.timeout":    DefaultTimeout.String(),
		"source.retries":    DefaultRetries,
		"resolver.denylist": []string{},
		"log.file":          "",
		"log.level":         "",
	}
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "wiitdb", "config.yaml")
}

// Load builds a Configuration. An empty path loads DefaultPath if it exists;
// an explicit path must exist.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed loading config defaults")
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed loading config file %s", path)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "failed loading config from environment")
	}

	cfg := &Configuration{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed unmarshalling config")
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
