package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Tutor   TutorConfig   `mapstructure:"tutor"`
	Export  ExportConfig  `mapstructure:"export"`
	UI      UIConfig      `mapstructure:"ui"`
	Keys    KeysConfig    `mapstructure:"keys"`
}

// CatalogConfig holds sqlite settings. An empty path keeps the catalog in
// memory for the session.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type SessionConfig struct {
	StudentName string `mapstructure:"student_name" validate:"required"`
}

type QuizConfig struct {
	Duration time.Duration `mapstructure:"duration" validate:"gt=0"`
}

type TutorConfig struct {
	ReplyDelay time.Duration `mapstructure:"reply_delay" validate:"gte=0"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// KeysConfig overrides the keys bound to named actions, e.g.
// bindings = { sign-out = ["ctrl+x"] }.
type KeysConfig struct {
	Bindings map[string][]string `mapstructure:"bindings"`
}

// DefaultPath is where the config file lives unless ACADAGENT_CONFIG or
// --config says otherwise.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "academicagent", "config.toml")
}

// Flags declares the command-line overrides understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("academicagent", pflag.ContinueOnError)
	fs.String("config", "", "path to config.toml")
	fs.String("catalog", "", "sqlite catalog path (empty keeps it in memory)")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("export-dir", "", "directory for exported reports")
	return fs
}

var flagKeys = map[string]string{
	"catalog":    "catalog.path",
	"log-file":   "log.path",
	"log-level":  "log.level",
	"export-dir": "export.dir",
}

// Load reads configuration from .env, the config file, env and flags, in
// increasing precedence. Env var overrides use prefix ACADAGENT_.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("session.student_name", "Pranali")
	v.SetDefault("quiz.duration", "25m30s")
	v.SetDefault("tutor.reply_delay", "1s")
	v.SetDefault("export.dir", filepath.Join(os.Getenv("HOME"), "Documents", "academicagent"))
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ACADAGENT_CONFIG")
	if flags != nil {
		if p, err := flags.GetString("config"); err == nil && p != "" {
			cfgPath = p
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ACADAGENT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints after decoding.
func Validate(c Config) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the non-secret settings back to path, creating its directory.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("session.student_name", cfg.Session.StudentName)
	v.Set("quiz.duration", cfg.Quiz.Duration.String())
	v.Set("tutor.reply_delay", cfg.Tutor.ReplyDelay.String())
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	if len(cfg.Keys.Bindings) > 0 {
		v.Set("keys.bindings", cfg.Keys.Bindings)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
