package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/tododemo/internal/model"
)

// isolate points the user config dir and working directory at empty temp
// dirs and clears TODO_* variables.
func isolate(t *testing.T) (xdg, wd string) {
	t.Helper()
	xdg, wd = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, name := range []string{"TODO_THEME", "TODO_LANG", "TODO_SEED", "TODO_FILTER", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_FILE"} {
		t.Setenv(name, "")
	}
	t.Chdir(wd)
	return xdg, wd
}

func write(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func load(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	cfg, err := Load(fs, args)
	if err != nil {
		t.Fatalf("Load(%v): %v", args, err)
	}
	return cfg, fs
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, fs := load(t, "ls")

	if cfg.Theme != DefaultTheme || cfg.Lang != DefaultLang || cfg.Filter != DefaultFilter {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
		t.Errorf("log settings: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "ls" {
		t.Errorf("remaining args = %v, want [ls]", got)
	}
	if cfg.InitialFilter() != model.All {
		t.Errorf("InitialFilter = %v, want all", cfg.InitialFilter())
	}
}

func TestLayering(t *testing.T) {
	xdg, wd := isolate(t)
	write(t, filepath.Join(xdg, "todo", "config.toml"), "theme = \"neon\"\nlang = \"zh\"\nfilter = \"active\"\n")
	write(t, filepath.Join(wd, ProjectConfigFile), "theme = \"mono\"\n")
	t.Setenv("TODO_FILTER", "completed")

	cfg, _ := load(t, "-lang", "en")

	tests := []struct {
		name, got, want string
	}{
		{"theme from project file", cfg.Theme, "mono"},
		{"filter from env", cfg.Filter, "completed"},
		{"lang from flag", cfg.Lang, "en"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestExplicitConfigReplacesProjectFile(t *testing.T) {
	_, wd := isolate(t)
	write(t, filepath.Join(wd, ProjectConfigFile), "theme = \"mono\"\n")
	other := filepath.Join(t.TempDir(), "other.toml")
	write(t, other, "theme = \"neon\"\nlog_level = \"debug\"\n")

	cfg, _ := load(t, "-config", other)
	if cfg.Theme != "neon" || cfg.LogLevel != "debug" {
		t.Fatalf("got theme %q level %q, want neon/debug", cfg.Theme, cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		_, wd := isolate(t)
		write(t, filepath.Join(wd, ProjectConfigFile), "theme = \n")
		if _, err := Load(flag.NewFlagSet("todo", flag.ContinueOnError), nil); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(flag.NewFlagSet("todo", flag.ContinueOnError), []string{"-config", "nope.toml"})
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("err = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, args := range [][]string{
			{"-theme", "pink"},
			{"-lang", "fr"},
			{"-filter", "done"},
			{"-log-level", "loud"},
			{"-log-format", "xml"},
		} {
			isolate(t)
			_, err := Load(flag.NewFlagSet("todo", flag.ContinueOnError), args)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load(%v) err = %v, want ErrInvalid", args, err)
			}
		}
	})
}

func TestValidateNormalizesCase(t *testing.T) {
	cfg := Default()
	cfg.Theme, cfg.Lang, cfg.LogFormat = "NEON", "ZH", "JSON"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "neon" || cfg.Lang != "zh" || cfg.LogFormat != "json" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := expandPath("~/seed.json"); got != filepath.Join(home, "seed.json") {
		t.Errorf("expandPath = %q", got)
	}
	if got := expandPath("rel/seed.json"); got != "rel/seed.json" {
		t.Errorf("expandPath changed a relative path: %q", got)
	}
}
