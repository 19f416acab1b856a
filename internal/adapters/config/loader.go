package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// envKeys maps environment variables to configuration paths.
var envKeys = map[string]string{
	domain.DatabaseEnvVar:                 "database",
	domain.DatabaseEnvVar + "_PREFIX":     "prefix",
	domain.DatabaseEnvVar + "_EXTENSIONS": "extensions",
	domain.DatabaseEnvVar + "_LOG_LEVEL":  "log.level",
	domain.DatabaseEnvVar + "_LOG_FORMAT": "log.format",
}

// Loader assembles a Config from its layered sources.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load builds the configuration seen from cwd.
//
// Layers, later ones winning: built-in defaults, the file named by
// CDBGEN_CONFIG or else the nearest .cdbgen.yaml in cwd or one of its
// parents, then the CDBGEN* environment variables. A relative database path
// is resolved against the directory of the file that set it, or against cwd.
func (l *Loader) Load(cwd string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, err)
	}

	source, err := findConfigFile(cwd)
	if err != nil {
		return nil, err
	}
	if source != "" {
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(source), yaml.Parser()); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", source)
		}
		if db := fk.String("database"); db != "" && !filepath.IsAbs(db) {
			if err := fk.Set("database", filepath.Join(filepath.Dir(source), db)); err != nil {
				return nil, errors.Join(domain.ErrConfigReadFailed, err)
			}
		}
		if err := k.Merge(fk); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", source)
		}
	}

	if err := k.Load(env.ProviderWithValue(domain.DatabaseEnvVar, ".", envValue), nil); err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigInvalid, err), "path", source)
	}
	cfg.Source = source

	if !filepath.IsAbs(cfg.Database) {
		cfg.Database = filepath.Join(cwd, cfg.Database)
	}
	cfg.Database = filepath.Clean(cfg.Database)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envValue maps one environment variable onto its configuration path.
// Unknown and empty variables are dropped.
func envValue(key, value string) (string, any) {
	path, ok := envKeys[key]
	if !ok || value == "" {
		return "", nil
	}
	if path == "extensions" {
		return path, splitList(value)
	}
	return path, value
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// findConfigFile returns the configuration file to apply, or "" if there is none.
func findConfigFile(cwd string) (string, error) {
	if path := os.Getenv(domain.ConfigEnvVar); path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
		}
		return filepath.Clean(path), nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
