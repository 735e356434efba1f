package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"keys-generator/internal/common"
)

// LoadFile loads and parses a YAML definition file from the given path.
func LoadFile(path string) (*DefFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DefFile.
func Parse(data []byte) (*DefFile, error) {
	var df DefFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DefFile) {
	if df.Version == "" {
		df.Version = "1"
	}

	for i := range df.Enums {
		e := &df.Enums[i]
		if e.Output == "" {
			e.Output = e.DefaultOutput()
		}

		for j := range e.Values {
			v := &e.Values[j]
			if v.Key == "" {
				v.Key = common.ToSnake(v.Name)
			}
		}
	}
}

// Marshal serializes a DefFile to YAML.
func Marshal(df *DefFile) ([]byte, error) {
	return yaml.Marshal(df)
}
