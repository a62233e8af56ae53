package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"

	"github.com/signadot/go-omi/encode"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/parse"
	"github.com/signadot/go-omi/wire"
)

// Config is the codec configuration file structure.
type Config struct {
	// Versions is the protocol version allow-list.
	Versions []string `yaml:"versions" toml:"versions" json:"versions"`

	// Namespaces are the namespace URIs of envelope and tree elements.
	Namespaces *NamespaceConfig `yaml:"namespaces" toml:"namespaces" json:"namespaces"`

	// Encode configures the output layout.
	Encode *EncodeConfig `yaml:"encode" toml:"encode" json:"encode"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel" toml:"logLevel" json:"logLevel"`
}

type NamespaceConfig struct {
	OMI string `yaml:"omi" toml:"omi" json:"omi"`
	ODF string `yaml:"odf" toml:"odf" json:"odf"`
}

type EncodeConfig struct {
	// Indent is the number of spaces per level; zero is compact output.
	Indent      int       `yaml:"indent" toml:"indent" json:"indent"`
	Declaration bool      `yaml:"declaration" toml:"declaration" json:"declaration"`
	Color       ColorMode `yaml:"color" toml:"color" json:"color"`
}

// ColorMode selects when encoded output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// LoadConfig loads a configuration file. The format follows the file
// extension: .yaml or .yml, .toml, and .json or .hujson (JSON with
// comments and trailing commas). Settings absent from the file keep their
// defaults; unknown settings are errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField())
	case ".toml":
		var md toml.MetaData
		md, err = toml.Decode(string(data), cfg)
		if err == nil && len(md.Undecoded()) != 0 {
			err = fmt.Errorf("unknown keys %v", md.Undecoded())
		}
	case ".json", ".hujson":
		err = decodeHuJSON(data, cfg)
	default:
		err = fmt.Errorf("unknown config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func decodeHuJSON(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	ns := wire.DefaultNamespaces()
	return &Config{
		Versions:   append([]string(nil), omi.DefaultVersions...),
		Namespaces: &NamespaceConfig{OMI: ns.OMI, ODF: ns.ODF},
		Encode:     &EncodeConfig{Color: ColorAuto},
		LogLevel:   "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Versions) == 0 {
		return errors.New("versions: empty allow-list")
	}
	for _, v := range c.Versions {
		if v == "" {
			return errors.New("versions: empty version")
		}
	}
	ns := c.namespaces()
	if ns.OMI == "" || ns.ODF == "" {
		return errors.New("namespaces: empty namespace")
	}
	if ns.OMI == ns.ODF {
		return fmt.Errorf("namespaces: omi and odf share %q", ns.OMI)
	}
	if c.Encode != nil {
		if c.Encode.Indent < 0 {
			return fmt.Errorf("encode: negative indent %d", c.Encode.Indent)
		}
		switch c.Encode.Color {
		case "", ColorAuto, ColorAlways, ColorNever:
		default:
			return fmt.Errorf("encode: unknown color mode %q", c.Encode.Color)
		}
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) namespaces() wire.Namespaces {
	if c.Namespaces == nil {
		return wire.DefaultNamespaces()
	}
	return wire.Namespaces{OMI: c.Namespaces.OMI, ODF: c.Namespaces.ODF}
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("logLevel: %w", err)
	}
	return l, nil
}

// Logger returns a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	l, _ := c.level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// ParseOptions returns the decoder options for c.
func (c *Config) ParseOptions(log *slog.Logger) []parse.ParseOption {
	return []parse.ParseOption{
		parse.Versions(c.Versions...),
		parse.Namespaces(c.namespaces()),
		parse.Logger(log),
	}
}

// EncodeOptions returns the encoder options for output written to w. In
// auto colour mode output is coloured only when w is a terminal.
func (c *Config) EncodeOptions(w io.Writer, log *slog.Logger) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Versions(c.Versions...),
		encode.Namespaces(c.namespaces()),
		encode.Logger(log),
	}
	ec := c.Encode
	if ec == nil {
		ec = &EncodeConfig{Color: ColorAuto}
	}
	res = append(res, encode.Indent(ec.Indent), encode.Declaration(ec.Declaration))
	switch ec.Color {
	case ColorAlways:
		res = append(res, encode.EncodeColors(encode.NewColors()))
	case ColorAuto, "":
		if isTerminal(w) {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
