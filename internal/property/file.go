package property

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps all properties in one JSON document keyed by name.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the JSON document at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the document location.
func (f *FileBackend) Path() string {
	return f.path
}

// Read parses the document. A missing file is an empty mapping.
func (f *FileBackend) Read() (map[string]*Property, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]*Property{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	props := make(map[string]*Property)
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	for name, p := range props {
		if p == nil {
			return nil, fmt.Errorf("parsing %s: property %q is null", f.path, name)
		}
	}

	return props, nil
}

// Write replaces the document with the full mapping, pretty-printed.
func (f *FileBackend) Write(props map[string]*Property) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.path, err)
	}

	data, err := json.MarshalIndent(props, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling properties: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}

	return nil
}
