// Package config resolves zotref settings from the environment and an
// optional global config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable names. Each has a config-file fallback; the
// environment wins when both are set.
const (
	EnvSQLitePath   = "ZOTREF_SQLITE"
	EnvCiteTemplate = "ZOTREF_CITE_TEMPLATE"
	EnvBannedWords  = "ZOTREF_BANNED_WORDS"
	EnvCacheDir     = "ZOTREF_CACHE_DIR"
)

// Defaults used when neither the environment nor the config file sets a value.
const (
	DefaultCiteTemplate = "{Author}_{Year}"
	DefaultBannedWords  = "a an the some from on in to of do with"
)

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "zotref"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// ErrDatabaseNotFound is returned when no Zotero database can be located.
// Callers must treat it as fatal; there is no degraded mode.
var ErrDatabaseNotFound = errors.New("zotero database not found")

// Config holds the resolved settings for a zotref process.
type Config struct {
	SQLitePath   string `yaml:"sqlite_path,omitempty"`
	CiteTemplate string `yaml:"cite_template,omitempty"`
	BannedWords  string `yaml:"banned_words,omitempty"`
	CacheDir     string `yaml:"cache_dir,omitempty"`
}

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/zotref/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// loadGlobalConfig reads the global config file.
// A missing file is not an error; it yields an empty config.
func loadGlobalConfig() (*Config, error) {
	path := GlobalConfigPath()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	return &cfg, nil
}

// Resolve builds the effective configuration: environment over config file
// over defaults. The returned SQLitePath is verified to exist and the cache
// directory is created if missing.
func Resolve() (*Config, error) {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvSQLitePath); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv(EnvCiteTemplate); v != "" {
		cfg.CiteTemplate = v
	}
	if v := os.Getenv(EnvBannedWords); v != "" {
		cfg.BannedWords = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.CacheDir = v
	}

	if cfg.CiteTemplate == "" {
		cfg.CiteTemplate = DefaultCiteTemplate
	}
	if cfg.BannedWords == "" {
		cfg.BannedWords = DefaultBannedWords
	}

	cfg.SQLitePath = ExpandPath(cfg.SQLitePath)
	path, err := resolveSQLitePath(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	cfg.SQLitePath = path

	cfg.CacheDir = ExpandPath(cfg.CacheDir)
	dir, err := resolveCacheDir(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	cfg.CacheDir = dir

	return cfg, nil
}

// resolveSQLitePath validates an explicit database path or falls back to
// ~/Zotero/zotero.sqlite.
func resolveSQLitePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrDatabaseNotFound, explicit)
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: set %s", ErrDatabaseNotFound, EnvSQLitePath)
	}
	fallback := filepath.Join(home, "Zotero", "zotero.sqlite")
	if _, err := os.Stat(fallback); err != nil {
		return "", fmt.Errorf("%w: set %s", ErrDatabaseNotFound, EnvSQLitePath)
	}
	return fallback, nil
}

// resolveCacheDir picks the cache directory: explicit override, then
// $XDG_CACHE_HOME/zotref, then ~/.cache/zotref, then ~/Library/Caches/zotref,
// then a directory under the system temp dir. The chosen directory is
// created if it does not exist.
func resolveCacheDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = cacheDirCandidate()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}
	return dir, nil
}

func cacheDirCandidate() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		if info, err := os.Stat(xdg); err == nil && info.IsDir() {
			return filepath.Join(xdg, GlobalConfigDir)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if info, err := os.Stat(filepath.Join(home, ".cache")); err == nil && info.IsDir() {
			return filepath.Join(home, ".cache", GlobalConfigDir)
		}
		if info, err := os.Stat(filepath.Join(home, "Library", "Caches")); err == nil && info.IsDir() {
			return filepath.Join(home, "Library", "Caches", GlobalConfigDir)
		}
	}
	return filepath.Join(os.TempDir(), ".zotref")
}

// ExpandPath expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
