// Package config loads and persists the user-level settings file. Settings
// live in a YAML file under the XDG config directory and every field has a
// working default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Settings are the persistent user preferences. Command-line flags override
// them for a single run.
type Settings struct {
	// Verbose prints the underlying git primitive for every step.
	Verbose bool `yaml:"verbose"`

	// Fake announces steps without executing them.
	Fake bool `yaml:"fake"`

	// Remote names the remote the workflows talk to.
	Remote string `yaml:"remote"`

	// StashUntracked includes untracked files when shelving local changes.
	StashUntracked bool `yaml:"stash_untracked"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Remote:         "origin",
		StashUntracked: true,
	}
}

// Path returns the settings file location, creating parent directories as
// needed.
func Path() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("legit", "config.yaml"))
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

// Load reads settings from path, filling defaults for absent fields. A
// missing file yields the defaults.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("parsing settings YAML: %w", err)
	}
	if settings.Remote == "" {
		settings.Remote = Default().Remote
	}
	return settings, nil
}

// Save writes settings to path.
func Save(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
