package cube

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads and validates a cube schema file.
// When the file does not set a name, the cube is named after the file
// ("characters.yml" -> "Characters").
func Parse(path string) (*Cube, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	return parse(data, NameFromPath(path))
}

// ParseBytes reads and validates a cube schema from bytes.
// On validation failure the returned error is a ValidationErrors listing
// every violation with its YAML line.
func ParseBytes(data []byte) (*Cube, error) {
	return parse(data, "")
}

// NameFromPath derives a cube name from a schema file path
func NameFromPath(path string) string {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" || ext == base {
			break
		}
		base = strings.TrimSuffix(base, ext)
	}
	return Pascalize(base)
}

func parse(data []byte, defaultName string) (*Cube, error) {
	// First pass: parse with node API to get line numbers
	var rootNode yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&rootNode); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("schema is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	lineMap := make(map[string]int)
	extractLineNumbers(&rootNode, "", lineMap)

	// Second pass: strict parsing into the fixed-field raw form
	var raw RawCube
	decoder = yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema (check for unknown/misspelled fields): %w", err)
	}

	if raw.Name == "" {
		raw.Name = defaultName
	}

	if errs := CheckCube(raw); len(errs) > 0 {
		for _, e := range errs {
			e.Line = lineFor(lineMap, e.Field)
		}
		return nil, errs
	}

	return build(raw), nil
}

// Encode renders a cube as YAML in its normalized form: titles are always
// present and map keys are sorted.
func Encode(c *Cube) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c.Raw()); err != nil {
		return nil, fmt.Errorf("failed to marshal cube: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal cube: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJSON renders a cube as indented JSON
func EncodeJSON(c *Cube) ([]byte, error) {
	data, err := json.MarshalIndent(c.Raw(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cube: %w", err)
	}
	return append(data, '\n'), nil
}

// Write writes a cube to a YAML file
func Write(path string, c *Cube) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// extractLineNumbers walks the YAML node tree and builds a map of key paths to line numbers
func extractLineNumbers(node *yaml.Node, path string, lineMap map[string]int) {
	if node == nil {
		return
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			extractLineNumbers(node.Content[0], path, lineMap)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			newPath := key.Value
			if path != "" {
				newPath = path + "." + key.Value
			}
			// Point at the key, not the value: a block value starts on the next line.
			lineMap[newPath] = key.Line
			extractLineNumbers(node.Content[i+1], newPath, lineMap)
		}
	}
}

// lineFor returns the line of path, falling back to the closest enclosing
// key when path itself is absent (e.g., a missing "sql" reports its entry).
func lineFor(lineMap map[string]int, path string) int {
	for path != "" {
		if line, ok := lineMap[path]; ok {
			return line
		}
		idx := strings.LastIndex(path, ".")
		if idx < 0 {
			break
		}
		path = path[:idx]
	}
	return 0
}
