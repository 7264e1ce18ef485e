package manning

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/sections-go/internal/domain"
)

// Overrides is the override file schema: exactly two mappings from
// 2-character feature code to entry. Unknown fields are rejected.
type Overrides struct {
	Surface    map[string]domain.ManningEntry `json:"surface" yaml:"surface"`
	Vegetation map[string]domain.ManningEntry `json:"vegetation" yaml:"vegetation"`
}

// Load returns the default table merged with overrides from path. An empty
// path returns the defaults unchanged.
func Load(path string) (*Table, error) {
	table := New()

	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mannings file: %w", err)
	}

	overrides, err := ParseOverrides(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	table.Merge(overrides)
	return table, nil
}

// ParseOverrides parses override data in the format implied by ext
// (.json, .yaml or .yml). The schema is strict: any unrecognized key or
// malformed coefficient fails with domain.ErrInvalidOverride.
func ParseOverrides(data []byte, ext string) (*Overrides, error) {
	var overrides Overrides

	switch strings.ToLower(ext) {
	case ".json", "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&overrides); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOverride, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&overrides); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOverride, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", domain.ErrInvalidOverride, ext)
	}

	return &overrides, nil
}
