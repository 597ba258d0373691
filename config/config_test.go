package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != DefaultConfig() {
		t.Fatalf("Load(missing) = %+v, want %+v", got, DefaultConfig())
	}
}

func TestEnsureDefaultCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := EnsureDefault(path); err != nil {
		t.Fatalf("EnsureDefault error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != DefaultConfig() {
		t.Fatalf("Load(default) = %+v, want %+v", got, DefaultConfig())
	}
}

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := EnsureDefault(path); err != nil {
		t.Fatalf("first EnsureDefault error: %v", err)
	}
	custom := []byte("version: \"1\"\nsdp_parallel_threshold: 50\nworker_pool_size: 4\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("writing custom config: %v", err)
	}
	if err := EnsureDefault(path); err != nil {
		t.Fatalf("second EnsureDefault error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.SDPParallelThreshold != 50 || got.WorkerPoolSize != 4 {
		t.Fatalf("EnsureDefault overwrote an existing config: %+v", got)
	}
}

func TestLoadParsesCustomValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("version: \"1\"\nsdp_parallel_threshold: 75\nworker_pool_size: 8\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.SDPParallelThreshold != 75 || got.WorkerPoolSize != 8 {
		t.Fatalf("Load = %+v, want threshold=75 worker_pool_size=8", got)
	}
}
