package build

import (
	"time"

	"github.com/oshokin/signal-bundler/internal/version"
)

// defaultMapCapacity is the default initial capacity for manifest maps.
const defaultMapCapacity = 4

// Manifest records what the bundler produced. Both platform variants share
// one manifest file, so a run replaces only its own target's entry.
type Manifest struct {
	// VersionNumber is the bundler version that produced the artifacts.
	VersionNumber string `yaml:"version"`
	// BuiltAt is the UTC timestamp of the most recent build.
	BuiltAt time.Time `yaml:"built_at"`
	// Files maps artifact names to their base64-encoded checksums.
	Files map[string]string `yaml:"files"`
	// Targets maps platform names to the artifact each one produced.
	Targets map[string]string `yaml:"targets"`
}

// NewManifest produces a Manifest initialized with defaults.
func NewManifest() *Manifest {
	return &Manifest{
		VersionNumber: version.Short(),
		Files:         make(map[string]string, defaultMapCapacity),
		Targets:       make(map[string]string, defaultMapCapacity),
	}
}

// RecordArtifact stores the artifact produced for the target, replacing a
// previous entry for the same target. It returns the replaced artifact name
// or an empty string when the target had none.
func (m *Manifest) RecordArtifact(target Target, checksum string, builtAt time.Time) string {
	if m.Files == nil {
		m.Files = make(map[string]string, defaultMapCapacity)
	}

	if m.Targets == nil {
		m.Targets = make(map[string]string, defaultMapCapacity)
	}

	previous := m.Targets[target.Name]
	if previous != "" && previous != target.ArtifactName() {
		delete(m.Files, previous)
	}

	m.Files[target.ArtifactName()] = checksum
	m.Targets[target.Name] = target.ArtifactName()
	m.VersionNumber = version.Short()
	m.BuiltAt = builtAt

	return previous
}
