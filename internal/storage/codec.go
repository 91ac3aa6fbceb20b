package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// Format is the text encoding of a stored collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name; empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, yaml or toml)", s)
}

// tomlDocument wraps the list, since TOML has no top-level arrays.
type tomlDocument struct {
	Tasks []todo.Task `toml:"tasks"`
}

// Encode serializes tasks. JSON is a top-level array, the same layout the
// browser version kept in local storage.
func (f Format) Encode(tasks []todo.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []todo.Task{}
	}

	switch f {
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.MarshalIndent(tasks, "", "  ")
	}
}

// Decode parses and validates a stored collection. Empty input is an empty
// collection.
func (f Format) Decode(data []byte) ([]todo.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tasks []todo.Task
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		tasks = doc.Tasks
	default:
		if err := validateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if err := todo.Validate(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
