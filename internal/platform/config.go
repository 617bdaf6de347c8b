package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigName is the optional config file looked up inside the keeper
// directory.
const ConfigName = "config.yaml"

// FileConfig mirrors the optional YAML config file.
type FileConfig struct {
	// Dir redirects the keeper to another directory.
	Dir string `yaml:"dir"`

	// EventBuffer overrides the change-event subscription buffer.
	EventBuffer int `yaml:"event_buffer"`
}

// LoadConfig reads the config file inside dir. A missing file is not an
// error; a present but unparseable one is, so a typo does not silently
// revert the user to defaults.
func LoadConfig(dir string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(filepath.Join(dir, ConfigName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
