// Package config loads CLI settings from twistycube.yaml, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/twistycube"
)

const (
	configFileName = "twistycube"
	configFileType = "yaml"
	envPrefix      = "TWISTYCUBE"
)

// Config holds all CLI settings.
type Config struct {
	Cube    CubeConfig    `mapstructure:"cube"`
	Play    PlayConfig    `mapstructure:"play"`
	Logging LoggingConfig `mapstructure:"logging"`
	Scripts ScriptsConfig `mapstructure:"scripts"`
}

// CubeConfig describes the puzzle to build.
type CubeConfig struct {
	Order         int               `mapstructure:"order"`
	ShuffleLength int               `mapstructure:"shuffle_length"`
	Seed          uint64            `mapstructure:"seed"`
	Palette       map[string]string `mapstructure:"palette"` // face name -> color name
}

// PlayConfig drives the interactive player.
type PlayConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// ScriptsConfig points at Lua hooks.
type ScriptsConfig struct {
	Dir       string `mapstructure:"dir"`
	Validator bool   `mapstructure:"validator"`
	Solver    bool   `mapstructure:"solver"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cube.order", 3)
	v.SetDefault("cube.shuffle_length", 25)
	v.SetDefault("cube.seed", 0)
	v.SetDefault("cube.palette", map[string]string{
		"front": "green",
		"up":    "white",
		"right": "red",
		"down":  "yellow",
		"left":  "orange",
		"back":  "blue",
	})
	v.SetDefault("play.tick_interval", 250*time.Millisecond)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("scripts.dir", "scripts")
	v.SetDefault("scripts.validator", false)
	v.SetDefault("scripts.solver", false)
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"order":     "cube.order",
	"seed":      "cube.seed",
	"shuffle":   "cube.shuffle_length",
	"tick":      "play.tick_interval",
	"log-level": "logging.level",
	"log-json":  "logging.format",
	"scripts":   "scripts.dir",
}

// Load reads configuration. An explicit path must exist; otherwise
// twistycube.yaml is looked up in the working directory and the user
// config directory, and a missing file is not an error. Flags that were
// set on the command line win over file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "twistycube"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		applyFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if name == "log-json" {
			if f.Value.String() == "true" {
				v.Set(key, "json")
			}
			continue
		}
		v.Set(key, f.Value.String())
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Cube.Order < 1 {
		return fmt.Errorf("config: cube.order must be at least 1, got %d", c.Cube.Order)
	}
	if c.Cube.ShuffleLength < 0 {
		return fmt.Errorf("config: cube.shuffle_length must not be negative")
	}
	if c.Play.TickInterval <= 0 {
		return fmt.Errorf("config: play.tick_interval must be positive")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Palette converts the configured face colors.
func (c *Config) Palette() (twistycube.Palette, error) {
	p := twistycube.DefaultPalette
	for face, name := range c.Cube.Palette {
		d, ok := twistycube.DirectionByName(face)
		if !ok {
			return p, fmt.Errorf("unknown face %q in palette", face)
		}
		col, err := twistycube.ParseColor(name)
		if err != nil {
			return p, err
		}
		p[d] = col
	}
	return p, p.Validate()
}

// CubeOptions returns the cube options implied by the configuration.
func (c *Config) CubeOptions() ([]twistycube.Option, error) {
	p, err := c.Palette()
	if err != nil {
		return nil, err
	}
	opts := []twistycube.Option{twistycube.WithPalette(p)}
	if c.Cube.Seed != 0 {
		opts = append(opts, twistycube.WithSeed(c.Cube.Seed))
	}
	return opts, nil
}
