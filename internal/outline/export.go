// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// YAML marshals the outline tree.
func YAML(o Outline) ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// JSON marshals the outline tree as indented JSON with a trailing newline.
func JSON(o Outline) ([]byte, error) {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}
