// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile names the embedded definitions in errors and logs.
const DefaultFile = "tanks.yaml"

//go:embed tanks.yaml
var defaultData []byte

// Parse decodes and validates a definitions document.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("defs: unmarshal: %w", err)
	}
	for id, def := range lib.Tanks {
		def.ID = id
		lib.Tanks[id] = def
	}
	if err := Validate(&lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

// LoadFile reads definitions from disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("defs: load %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("defs: load %s: %w", path, err)
	}
	return lib, nil
}

// Load reads path, or the embedded defaults when path is empty.
func Load(path string) (*Library, error) {
	if path == "" {
		lib, err := Parse(defaultData)
		if err != nil {
			return nil, fmt.Errorf("defs: load %s: %w", DefaultFile, err)
		}
		return lib, nil
	}
	return LoadFile(path)
}
