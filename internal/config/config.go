package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds build settings shared by the bundler binaries.
// None of the settings can alter the packaging argument list;
// it is fixed at authoring time.
type Config struct {
	// Python is the interpreter command used for installer and packaging
	// tool invocations. Empty means the platform default. The Windows
	// variant is typically driven from Linux through an alternate
	// interpreter hosted by wine, which is what this setting is for.
	Python string `yaml:"python"`
}

// DefaultConfigFilename is the default filename for bundler settings.
const DefaultConfigFilename = "signal-bundler-settings.yaml"

// errInterpreterRequired is returned when the python key is present but blank.
var errInterpreterRequired = errors.New("python interpreter command must not be blank")

// Load reads configuration from the provided path.
// A missing file is not an error: every setting has a built-in default,
// so a bare checkout builds without any configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)

	// Decoding through pointers distinguishes an absent key from a blank one.
	var raw struct {
		Python *string `yaml:"python"`
	}

	if err = decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	var cfg Config

	if raw.Python != nil {
		cfg.Python = strings.TrimSpace(*raw.Python)
		if cfg.Python == "" {
			return nil, errInterpreterRequired
		}
	}

	return &cfg, nil
}
