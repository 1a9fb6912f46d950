// Package config provides lvltrie settings loaded from defaults, an optional
// config file, a .env file and LVLTRIE_* environment variables.
//
// Precedence, lowest first:
//
//	defaults < config file < environment (.env fills unset variables only) < bound CLI flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvltrie/dot"
	"github.com/katalvlaran/lvltrie/trie"
)

// EnvPrefix is prepended to every environment variable, e.g. LVLTRIE_DELETE_THRESHOLD.
const EnvPrefix = "LVLTRIE"

// Setting keys. Flag names match these keys.
const (
	KeyDeleteThreshold = "delete-threshold"
	KeyMaxNodes        = "max-nodes"
	KeyVisualizerLimit = "visualizer-limit"
	KeyDotBinary       = "dot-binary"
	KeyPrompt          = "prompt"
	KeyLogLevel        = "log-level"
)

// DefaultPrompt is the shell prompt used when none is configured.
const DefaultPrompt = "trie> "

// ErrInvalid indicates a setting failed validation.
var ErrInvalid = errors.New("config: invalid setting")

// Settings holds all application configuration.
type Settings struct {
	DeleteThreshold int    `mapstructure:"delete-threshold"`
	MaxNodes        int    `mapstructure:"max-nodes"`
	VisualizerLimit int    `mapstructure:"visualizer-limit"`
	DotBinary       string `mapstructure:"dot-binary"`
	Prompt          string `mapstructure:"prompt"`
	LogLevel        string `mapstructure:"log-level"`
}

// Loader reads Settings. The zero value is not usable; call NewLoader.
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader returns a Loader with defaults registered and environment
// lookup enabled. envFile names the dotenv file to read; "" means ".env".
func NewLoader(envFile string) *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if envFile == "" {
		envFile = ".env"
	}

	return &Loader{v: v, envFile: envFile}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDeleteThreshold, trie.DefaultDeleteThreshold)
	v.SetDefault(KeyMaxNodes, 0)
	v.SetDefault(KeyVisualizerLimit, dot.DefaultLimit)
	v.SetDefault(KeyDotBinary, dot.DefaultBinary)
	v.SetDefault(KeyPrompt, DefaultPrompt)
	v.SetDefault(KeyLogLevel, zerolog.LevelInfoValue)
}

// BindFlags lets explicitly set flags override every other source.
// Flags are looked up by setting key; missing flags are skipped.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyDeleteThreshold, KeyMaxNodes, KeyVisualizerLimit, KeyDotBinary, KeyPrompt, KeyLogLevel} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", key, err)
		}
	}

	return nil
}

// Load reads the dotenv file (if present), then the config file at path
// (if path is non-empty), and returns validated Settings.
func (l *Loader) Load(path string) (Settings, error) {
	if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("config: load %s: %w", l.envFile, err)
	}

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Load is shorthand for NewLoader("").Load(path).
func Load(path string) (Settings, error) {
	return NewLoader("").Load(path)
}

// Validate checks ranges and the log level.
func (s Settings) Validate() error {
	switch {
	case s.DeleteThreshold < 1:
		return fmt.Errorf("%w: %s must be positive (%d)", ErrInvalid, KeyDeleteThreshold, s.DeleteThreshold)
	case s.MaxNodes < 0:
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, KeyMaxNodes, s.MaxNodes)
	case s.VisualizerLimit < 0:
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, KeyVisualizerLimit, s.VisualizerLimit)
	case s.DotBinary == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyDotBinary)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	return nil
}

// Level returns the parsed log level. Settings from Load always parse.
func (s Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// TrieOptions translates the settings into trie.New options.
func (s Settings) TrieOptions() []trie.Option {
	return []trie.Option{
		trie.WithDeleteThreshold(s.DeleteThreshold),
		trie.WithMaxNodes(s.MaxNodes),
	}
}

// DotOptions translates the settings into dot options.
func (s Settings) DotOptions() []dot.Option {
	return []dot.Option{
		dot.WithLimit(s.VisualizerLimit),
		dot.WithBinary(s.DotBinary),
	}
}
