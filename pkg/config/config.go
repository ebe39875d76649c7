// Package config loads framecode's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/framecode/config.toml, falling back to
// ~/.config/framecode/config.toml. A missing file is not an error; every
// key is optional and command-line flags override file values.
//
//	markup     = "jsx"       # jsx | html
//	stylesheet = "less"      # less | css
//	minify     = false
//	resolver   = "host"      # host | geometry
//	payload    = "artifacts" # artifacts | selection
//
//	[server]
//	addr = "127.0.0.1:7341"
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/host"
	"github.com/matzehuels/framecode/pkg/pipeline"
	"github.com/matzehuels/framecode/pkg/server"
)

// appName names the configuration directory.
const appName = "framecode"

// Config is the decoded configuration file.
type Config struct {
	Markup     string `toml:"markup"`
	Stylesheet string `toml:"stylesheet"`
	Minify     bool   `toml:"minify"`
	Resolver   string `toml:"resolver"`
	Payload    string `toml:"payload"`

	Server ServerConfig `toml:"server"`
}

// ServerConfig is the [server] table.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Markup:     pipeline.DefaultMarkup,
		Stylesheet: pipeline.DefaultStylesheet,
		Resolver:   pipeline.DefaultResolver,
		Payload:    string(host.PayloadArtifacts),
		Server:     ServerConfig{Addr: server.DefaultAddr},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path, or at [Path] when path is empty.
// Keys missing from the file keep their defaults. Unknown keys and invalid
// values are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return Default(), errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
			}
			return Default(), nil
		}
		return Default(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Default(), errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks every value.
func (c Config) Validate() error {
	if err := pipeline.ValidateMarkup(c.Markup); err != nil {
		return err
	}
	if err := pipeline.ValidateStylesheet(c.Stylesheet); err != nil {
		return err
	}
	if err := pipeline.ValidateResolver(c.Resolver); err != nil {
		return err
	}
	return errors.ValidateOneOf(errors.ErrCodeInvalidInput, "payload", c.Payload, host.Payloads...)
}

// Options returns the pipeline options described by c.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Resolver:   c.Resolver,
		Markup:     c.Markup,
		Stylesheet: c.Stylesheet,
		Minify:     c.Minify,
	}
}
