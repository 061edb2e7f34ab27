package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultContextFilename is the context file looked up when none is given.
const DefaultContextFilename = "redstack.yaml"

// ErrContextNotFound is returned by FindContextFile when no file exists.
var ErrContextNotFound = errors.New("context file not found")

// LoadFile reads a context file without applying defaults or overrides.
func LoadFile(path string) (ResourceContext, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return ResourceContext{}, fmt.Errorf("failed to read context file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a YAML context document. Unknown keys are rejected.
func LoadFromBytes(data []byte) (ResourceContext, error) {
	var rc ResourceContext
	if len(data) == 0 {
		return rc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rc); err != nil {
		if errors.Is(err, io.EOF) {
			return rc, nil
		}
		return ResourceContext{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return rc, nil
}

// Load builds the effective context: the file at path (or the discovered
// default file, if any), then environment variables, then overrides.
// Defaults are applied last.
func Load(path string, overrides map[string]string) (ResourceContext, error) {
	var rc ResourceContext

	if path == "" {
		found, err := FindContextFile()
		switch {
		case err == nil:
			path = found
		case !errors.Is(err, ErrContextNotFound):
			return ResourceContext{}, err
		}
	}
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return ResourceContext{}, err
		}
		rc = loaded
	}

	rc, err := ApplyEnv(rc)
	if err != nil {
		return ResourceContext{}, err
	}
	rc, err = ApplyOverrides(rc, overrides)
	if err != nil {
		return ResourceContext{}, err
	}
	return rc.WithDefaults(), nil
}

// FindContextFile searches the current directory and its parents for
// redstack.yaml.
func FindContextFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultContextFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s", ErrContextNotFound, DefaultContextFilename)
}

// Save writes the context as YAML.
func Save(rc ResourceContext, path string) error {
	data, err := yaml.Marshal(rc)
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write context file: %w", err)
	}
	return nil
}
