package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked up in the working directory when no config file
// is given.
const DefaultFilename = "hburger.yaml"

// Load reads settings from a YAML file on top of Default().
//
// If path is provided, it must exist. If path is empty, DefaultFilename is
// used when present and the defaults otherwise. Either ".yaml" or ".yml" is
// accepted. Returns the settings and the file they were read from ("" when
// no file was read).
func Load(path string) (Settings, string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}
	path = ResolveYAMLPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		return Settings{}, "", fmt.Errorf("read config %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, "", fmt.Errorf("config %s: %w", path, err)
	}
	return s, path, nil
}

// Parse decodes YAML config bytes on top of Default().
func Parse(data []byte) (Settings, error) {
	var cfg O
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("parse yaml: %w", err)
	}
	return Default().Apply(cfg)
}

// ResolveYAMLPath checks if the given config path exists. If it doesn't and
// ends with ".yaml", it tries the ".yml" variant (and vice versa).
func ResolveYAMLPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}

	alt := ""
	if base, ok := strings.CutSuffix(path, ".yaml"); ok {
		alt = base + ".yml"
	} else if base, ok := strings.CutSuffix(path, ".yml"); ok {
		alt = base + ".yaml"
	}
	if alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return path
}
