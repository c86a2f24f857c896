package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/signal-bundler/internal/domain/build"
)

// DefaultFilename is the manifest file name written into the output directory.
const DefaultFilename = "signal-bundler-version.yaml"

// defaultFileMode is used when writing the manifest file.
const defaultFileMode os.FileMode = 0o644

// Repository defines persistence operations for the build manifest.
type Repository interface {
	Load(ctx context.Context) (*build.Manifest, error)
	Save(ctx context.Context, manifest *build.Manifest) error
}

// FileRepository persists the build manifest to a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the manifest file.
	path string
	// mu protects concurrent access to the manifest file.
	mu sync.Mutex
}

// ErrNotFound is returned when the manifest file does not exist yet.
var ErrNotFound = errors.New("manifest not found")

// errManifestIsNotSet is returned when a nil manifest is provided.
var errManifestIsNotSet = errors.New("manifest is not set")

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the manifest from disk.
func (r *FileRepository) Load(_ context.Context) (*build.Manifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read manifest file: %w", err)
	}

	var manifest build.Manifest
	if err = yaml.Unmarshal(contents, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest file: %w", err)
	}

	return &manifest, nil
}

// Save writes the manifest to disk in YAML representation.
func (r *FileRepository) Save(_ context.Context, manifest *build.Manifest) error {
	if manifest == nil {
		return errManifestIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err = os.WriteFile(r.path, data, defaultFileMode); err != nil {
		return fmt.Errorf("write manifest file: %w", err)
	}

	return nil
}
