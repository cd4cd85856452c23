package keys

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File is the on-disk shape of keybindings.toml.
type File struct {
	Version  int             `toml:"version"`
	Bindings []BindingConfig `toml:"binding"`
}

const fileVersion = 1

// LoadFile reads overrides from path. A missing file yields no overrides.
func LoadFile(path string) ([]BindingConfig, error) {
	if path == "" {
		return nil, nil
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Version != 0 && f.Version != fileVersion {
		return nil, fmt.Errorf("parse %s: unsupported version %d", path, f.Version)
	}
	return f.Bindings, nil
}

// Load builds the default registry and applies the overrides in path.
// When the file is rejected the defaults are returned with the error.
func Load(path string) (*Registry, error) {
	r := NewRegistry()
	items, err := LoadFile(path)
	if err != nil {
		return r, err
	}
	if err := r.ApplyKeybindingConfig(items); err != nil {
		return NewRegistry(), fmt.Errorf("apply %s: %w", path, err)
	}
	return r, nil
}

// EncodeTOML renders the registry's effective bindings as keybindings.toml.
func (r *Registry) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	f := File{Version: fileVersion, Bindings: r.ExportKeybindingConfig()}
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("encode keybindings: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile saves the effective bindings to path.
func (r *Registry) WriteFile(path string) error {
	data, err := r.EncodeTOML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
