package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaJSON)

// validateJSON checks raw JSON against the task list schema.
func validateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := tasksSchema.Validate(doc); err != nil {
		return schemaError(err)
	}
	return nil
}

// schemaError flattens a schema validation error into one line per leaf.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var leaves []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			leaves = append(leaves, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	return fmt.Errorf("schema validation failed: %s", strings.Join(leaves, "; "))
}
