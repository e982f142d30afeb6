package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Renderer backends.
const (
	RendererSoftware = "software"
	RendererGPU      = "gpu"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "TWILIGHT_CONFIG"

// ErrUnknownRenderer is returned for a renderer name other than
// RendererSoftware or RendererGPU.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds the operational settings. The look of the sky is fixed.
type Config struct {
	LogLevel   string `toml:"log_level"`
	Renderer   string `toml:"renderer"`
	FixedStars bool   `toml:"fixed_stars"` // repeat the same layout on every redraw
	Seed       uint64 `toml:"seed"`        // used only with FixedStars
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Renderer: RendererSoftware,
	}
}

// Path returns where the config file is looked up: $TWILIGHT_CONFIG if set,
// otherwise twilight/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "twilight", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the renderer name and log level.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererSoftware, RendererGPU:
	default:
		return fmt.Errorf("%w %q", ErrUnknownRenderer, c.Renderer)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// GPU reports whether the GPU renderer is selected.
func (c Config) GPU() bool {
	return c.Renderer == RendererGPU
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
