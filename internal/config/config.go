package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"spellout/spellabet"
)

const EnvPrefix = "SPELLOUT"

type Config struct {
	Alphabet      spellabet.SpellingAlphabet `mapstructure:"alphabet"`
	Overrides     string                     `mapstructure:"overrides"`
	OverridesFile string                     `mapstructure:"overrides_file"`
	NonceForm     bool                       `mapstructure:"nonce_form"`
	Verbose       bool                       `mapstructure:"verbose"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // text | json
	} `mapstructure:"log"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"alphabet":       "alphabet",
	"overrides":      "overrides",
	"overrides-file": "overrides_file",
	"nonce-form":     "nonce_form",
	"verbose":        "verbose",
	"log-level":      "log.level",
}

// Load resolves configuration from, lowest to highest precedence: defaults,
// the YAML file at path (if path is set), SPELLOUT_* environment variables
// and flags the user actually set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	applyDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		falseyBoolHook,
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("alphabet", spellabet.DefaultAlphabet.String())
	v.SetDefault("overrides", "")
	v.SetDefault("overrides_file", "")
	v.SetDefault("nonce_form", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// IsFalsey reports whether an environment style boolean means "off".
// Anything not listed is treated as on, so SPELLOUT_VERBOSE=yes works.
func IsFalsey(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "f", "false", "n", "no", "off":
		return true
	}
	return false
}

var falseyBoolHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return !IsFalsey(reflect.ValueOf(data).String()), nil
}

func validate(cfg *Config) error {
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return errors.New("log.format must be text or json")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.New("log.level must be debug, info, warn or error")
}

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg Config, w io.Writer) *slog.Logger {
	level, _ := parseLevel(cfg.Log.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
