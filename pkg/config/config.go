// Package config loads generation presets from TOML or YAML files.
//
// A preset supplies defaults for the command line flags so a frequently used
// paper size or print resolution does not have to be retyped:
//
//	# letter.toml
//	dpi    = 300
//	style  = "crowsfeet"
//	format = "png"
//	output = "grid.png"
//
// The decoder is chosen by file extension: .toml, .yaml or .yml. Unknown keys
// are rejected so that typos surface instead of being silently ignored.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/pipeline"
)

// Config is a generation preset. Pointer fields distinguish "absent" from a
// zero value.
type Config struct {
	DPI    *float64 `toml:"dpi" yaml:"dpi"`
	Style  string   `toml:"style" yaml:"style"`
	Format string   `toml:"format" yaml:"format"`
	Output string   `toml:"output" yaml:"output"`
	Pretty *bool    `toml:"pretty" yaml:"pretty"`
}

// Load reads the preset at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"config %s: unsupported extension %q (use .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Apply copies preset values into opts for every field whose flag has not
// been set explicitly. isSet reports whether the named flag was given.
func (c *Config) Apply(opts *pipeline.Options, isSet func(flag string) bool) {
	if c.DPI != nil && !isSet("dpi") {
		opts.DPI = *c.DPI
	}
	if c.Style != "" && !isSet("style") {
		opts.Style = c.Style
	}
	if c.Format != "" && !isSet("format") {
		opts.Format = c.Format
	}
	if c.Pretty != nil && !isSet("pretty") {
		opts.Pretty = *c.Pretty
	}
}
