// Package config loads settings for the todo binary.
//
// Sources, lowest to highest priority:
//  1. Defaults
//  2. User config file ($XDG_CONFIG_HOME/todo/config.toml or ~/.config/todo/config.toml)
//  3. Project config file (todo.toml in the working directory), or the file named by -config
//  4. Environment variables (TODO_*)
//  5. CLI flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/model"
)

const (
	DefaultTheme     = "classic"
	DefaultLang      = "en"
	DefaultFilter    = "all"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	ProjectConfigFile = "todo.toml"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("invalid config")

	Themes     = []string{"classic", "neon", "mono"}
	Langs      = []string{"en", "zh"}
	LogFormats = []string{"text", "json", "logfmt"}
)

// Config holds every tunable. Field names match the TOML keys.
type Config struct {
	Theme     string `toml:"theme"`
	Lang      string `toml:"lang"`
	SeedFile  string `toml:"seed_file"`
	Filter    string `toml:"filter"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Lang = DefaultLang
	cfg.Filter = DefaultFilter
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Default returns a config with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

type flagValues struct {
	configFile string
	cfg        Config
}

func registerFlags(fs *flag.FlagSet, fv *flagValues) {
	fs.StringVar(&fv.configFile, "config", "", "config file (default: ./"+ProjectConfigFile+" if present)")
	fs.StringVar(&fv.cfg.Theme, "theme", "", "color theme: classic | neon | mono")
	fs.StringVar(&fv.cfg.Lang, "lang", "", "label language: en | zh")
	fs.StringVar(&fv.cfg.SeedFile, "seed", "", "seed items from a .json or .yaml file")
	fs.StringVar(&fv.cfg.Filter, "filter", "", "initial filter: all | active | completed")
	fs.StringVar(&fv.cfg.LogLevel, "log-level", "", "log level: debug | info | warn | error")
	fs.StringVar(&fv.cfg.LogFormat, "log-format", "", "log format: text | json | logfmt")
	fs.StringVar(&fv.cfg.LogFile, "log-file", "", "append logs to this file")
}

// Load registers flags on fs, parses args and merges every source.
// The remaining positional arguments are available from fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var fv flagValues
	registerFlags(fs, &fv)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()

	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}

	if fv.configFile != "" {
		if err := loadConfigFile(cfg, fv.configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", fv.configFile, err)
		}
	} else if p := findProjectConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}

	loadFromEnv(cfg)
	applyFlags(cfg, fs, &fv.cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.SeedFile = expandPath(cfg.SeedFile)
	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

// loadConfigFile decodes TOML over cfg; keys absent from the file keep
// their current values.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		log.Warn("config: unknown keys ignored", "file", path, "keys", undec)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	for _, e := range []struct {
		name string
		dst  *string
	}{
		{"TODO_THEME", &cfg.Theme},
		{"TODO_LANG", &cfg.Lang},
		{"TODO_SEED", &cfg.SeedFile},
		{"TODO_FILTER", &cfg.Filter},
		{"TODO_LOG_LEVEL", &cfg.LogLevel},
		{"TODO_LOG_FORMAT", &cfg.LogFormat},
		{"TODO_LOG_FILE", &cfg.LogFile},
	} {
		if v := strings.TrimSpace(os.Getenv(e.name)); v != "" {
			*e.dst = v
		}
	}
}

// applyFlags copies only the flags that were set on the command line.
func applyFlags(cfg *Config, fs *flag.FlagSet, fromFlags *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = fromFlags.Theme
		case "lang":
			cfg.Lang = fromFlags.Lang
		case "seed":
			cfg.SeedFile = fromFlags.SeedFile
		case "filter":
			cfg.Filter = fromFlags.Filter
		case "log-level":
			cfg.LogLevel = fromFlags.LogLevel
		case "log-format":
			cfg.LogFormat = fromFlags.LogFormat
		case "log-file":
			cfg.LogFile = fromFlags.LogFile
		}
	})
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(c.Theme)
	c.Lang = strings.ToLower(c.Lang)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("%w: theme %q (want one of %s)", ErrInvalid, c.Theme, strings.Join(Themes, ", "))
	}
	if !slices.Contains(Langs, c.Lang) {
		return fmt.Errorf("%w: lang %q (want one of %s)", ErrInvalid, c.Lang, strings.Join(Langs, ", "))
	}
	if _, err := model.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("%w: log format %q (want one of %s)", ErrInvalid, c.LogFormat, strings.Join(LogFormats, ", "))
	}
	return nil
}

// InitialFilter is the parsed Filter field. Validate has already vetted it.
func (c *Config) InitialFilter() model.Filter {
	f, _ := model.ParseFilter(c.Filter)
	return f
}

func findUserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	p := filepath.Join(dir, "todo", "config.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func findProjectConfigFile() string {
	if _, err := os.Stat(ProjectConfigFile); err == nil {
		return ProjectConfigFile
	}
	return ""
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
