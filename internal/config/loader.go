package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromPath reads a machine definition (YAML or JSON) from disk.
// Format is detected by extension, or by content when the extension is
// something else.
func LoadFromPath(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read machine definition: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a machine definition from bytes. ext is a format hint
// (".yaml"/".yml"/".json"); anything else falls back to content detection,
// treating a leading '{' as JSON.
func Load(data []byte, ext string) (Definition, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext != ".yaml" && ext != ".json" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var d Definition
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return Definition{}, fmt.Errorf("parse machine definition json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Definition{}, fmt.Errorf("parse machine definition yaml: %w", err)
		}
	}
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}
