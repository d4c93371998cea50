// Package config reads the optional unogen.toml project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/unotools/unogen/internal/office"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "unogen.toml"

// Config mirrors the unogen.toml layout. All fields are optional.
type Config struct {
	Office struct {
		Home     string `toml:"home"`
		BaseHome string `toml:"base_home"`
	} `toml:"office"`
	SDK struct {
		Home    string `toml:"home"`
		UREHome string `toml:"ure_home"`
	} `toml:"sdk"`
}

// Load parses the TOML file at path. A missing file is not an error
// and yields the zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// Properties converts the configuration into the property map
// consulted by the installation locator when the corresponding
// environment variables are unset.
func (c *Config) Properties() map[string]string {
	return map[string]string{
		office.OfficeHomeEnv: c.Office.Home,
		office.OfficeBaseEnv: c.Office.BaseHome,
		office.SDKHomeEnv:    c.SDK.Home,
		office.UREHomeEnv:    c.SDK.UREHome,
	}
}
