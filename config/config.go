// Package config loads the YAML configuration shared by the eval-* CLI
// commands: the SDP parallel threshold and an optional worker pool size
// override. A missing file is not an error - DefaultConfig covers it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// CurrentConfigVersion is bumped whenever Config's shape changes in a way
// that breaks older files.
const CurrentConfigVersion = "1"

// Config controls the tunables this design's Open Questions leave to the
// operator: the size threshold at which the SDP driver switches to its
// intra-SDP parallel region, and an override for the worker pool size that
// both parallel regions otherwise size to runtime.NumCPU().
type Config struct {
	Version string `yaml:"version"`

	// SDPParallelThreshold is the path-set size at or above which
	// ToSDPParallel uses the parallel driver instead of the sequential one.
	SDPParallelThreshold int `yaml:"sdp_parallel_threshold"`

	// WorkerPoolSize overrides runtime.NumCPU() for both parallel regions
	// when positive. Zero means "use the host core count".
	WorkerPoolSize int `yaml:"worker_pool_size"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Version:              CurrentConfigVersion,
		SDPParallelThreshold: 200,
		WorkerPoolSize:       0,
	}
}

// Load reads path and unmarshals it into a Config, falling back to
// DefaultConfig for any field absent from the file. A missing file is not
// an error: Load returns DefaultConfig() unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// EnsureDefault writes DefaultConfig to path if no file exists there yet,
// creating any missing parent directories.
func EnsureDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("config: checking %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating directory for %s: %w", path, err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: marshalling default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the conventional location for this tool's config
// file, under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".pyrbd3", "config.yaml"), nil
}
