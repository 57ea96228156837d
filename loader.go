package flextype

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Mxher07/flextype/options"
)

// LoadYAML builds a batch of wrappers from a YAML mapping of variable
// names to initial values. Scalar values arrive with the types the
// YAML decoder gives them; string values still go through coercion
// like any other input.
func LoadYAML(data []byte, locks ...options.LockEnum) (map[string]*Value, error) {
	var variables map[string]any
	if err := yaml.Unmarshal(data, &variables); err != nil {
		return nil, fmt.Errorf("failed to parse variables YAML: %w", err)
	}

	return NewBatch(variables, locks...)
}

// LoadYAMLFile loads and parses a YAML variables file from the given path.
func LoadYAMLFile(path string, locks ...options.LockEnum) (map[string]*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variables file %s: %w", path, err)
	}

	return LoadYAML(data, locks...)
}

// FromEnviron builds a batch from the process environment, keeping
// only variables that start with prefix and stripping it from the
// resulting names. Environment values are strings, so this is the
// coercion pipeline's natural input: "42" wraps as a number, "true"
// as a boolean, and so on, unless locks say otherwise.
func FromEnviron(prefix string, locks ...options.LockEnum) (map[string]*Value, error) {
	variables := map[string]any{}
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		trimmed := strings.TrimPrefix(name, prefix)
		if trimmed == "" {
			continue
		}
		variables[trimmed] = value
	}

	return NewBatch(variables, locks...)
}
