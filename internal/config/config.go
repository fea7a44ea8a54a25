// Package config loads and saves the TOML configuration document per
// spec §6. It keeps the teacher's Load/Save/configDir-via-os.UserConfigDir
// shape from the original internal/config/config.go, with the schema
// replaced entirely: device-menu JSON gives way to the spotify/youtube/
// devices/apps tree this system actually needs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
)

// Spotify holds the credentials and playlist the Spotify app operates
// against. RefreshToken is populated by the `configure` CLI flow's OAuth
// bootstrap, which also persists ClientID and ClientSecret to disk.
type Spotify struct {
	PlaylistID   string `toml:"playlist_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
}

// YouTube holds the API key and playlist the YouTube app polls.
type YouTube struct {
	APIKey     string `toml:"api_key"`
	PlaylistID string `toml:"playlist_id"`
}

// Device describes one configured MIDI controller.
type Device struct {
	Name string         `toml:"name"`
	Type devicekind.Kind `toml:"type"`
}

// Selection names which optional apps are wired into the Selection
// multiplexer, and in what order they appear.
type Selection struct {
	Apps []string `toml:"apps"`
}

// Apps groups every app-specific sub-config. Only Selection exists today;
// this mirrors spec §6's `apps.selection.apps` path.
type Apps struct {
	Selection Selection `toml:"selection"`
}

// Config is the root TOML document.
type Config struct {
	Spotify Spotify           `toml:"spotify"`
	YouTube YouTube           `toml:"youtube"`
	Devices map[string]Device `toml:"devices"`
	Apps    Apps              `toml:"apps"`
}

// configDir returns the platform-appropriate config directory.
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-midihub"), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from disk, returning an empty Config if the file
// does not yet exist (the `configure` subcommand is expected to populate
// and save one before `run` is used in earnest).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			cfg.Devices = map[string]Device{}
			return &cfg, nil
		}
		return nil, fmt.Errorf("decoding config at %s: %w", path, err)
	}
	if cfg.Devices == nil {
		cfg.Devices = map[string]Device{}
	}
	return &cfg, nil
}

// Save writes the config to disk, creating its directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}
	return nil
}
