package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field describes one dataset field for display hints. Every attribute is
// optional.
type Field struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Schema maps field names to their metadata.
type Schema map[string]Field

// Lookup returns the metadata for a field.
func (s Schema) Lookup(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	f, ok := s[name]
	return f, ok
}

// LoadSchema reads a field schema from a JSON or YAML file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseSchema(data, filepath.Ext(path))
}

// ParseSchema decodes a field schema. ext selects the decoder: ".json" uses
// JSON and anything else YAML. A JSON Schema style "properties" object is
// unwrapped. A field given as a bare string is taken as its type.
func ParseSchema(data []byte, ext string) (Schema, error) {
	var root map[string]any
	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, &root)
	} else {
		err = yaml.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	if props, ok := root["properties"].(map[string]any); ok {
		root = props
	}

	schema := make(Schema, len(root))
	for name, raw := range root {
		switch v := raw.(type) {
		case string:
			schema[name] = Field{Type: v}
		case map[string]any:
			schema[name] = fieldFromMap(v)
		default:
			schema[name] = Field{}
		}
	}
	return schema, nil
}

func fieldFromMap(m map[string]any) Field {
	var f Field
	switch t := m["type"].(type) {
	case string:
		f.Type = t
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		f.Type = strings.Join(parts, "|")
	}
	f.Description, _ = m["description"].(string)
	f.Format, _ = m["format"].(string)
	f.Enum, _ = m["enum"].([]any)
	return f
}
