package decode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures file decoding behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from the file
	// extension if empty.
	Format string
}

// YAML decodes a YAML document into a generic value tree.
func YAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML payload: %w", err)
	}
	return doc, nil
}

// JSON decodes a JSON document into a generic value tree. Numbers decode
// as float64, following encoding/json defaults.
func JSON(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse JSON payload: %w", err)
	}
	return doc, nil
}

// TOML decodes a TOML document into a generic value tree. TOML documents
// are always tables at the top level, so the result is a map[string]any.
func TOML(data []byte) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse TOML payload: %w", err)
	}
	return doc, nil
}

// File reads and decodes a payload file. The format is taken from opts or
// inferred from the file extension.
func File(path string, opts Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	switch format {
	case "yaml", "yml":
		doc, err := YAML(data)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", path, err)
		}
		return doc, nil
	case "json":
		doc, err := JSON(data)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", path, err)
		}
		return doc, nil
	case "toml":
		doc, err := TOML(data)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", path, err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported payload format: %s (supported: yaml, json, toml)", format)
	}
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
