// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultPort != 6667 {
		t.Errorf("DefaultPort = %d, want 6667", cfg.DefaultPort)
	}
	if cfg.Debug {
		t.Error("Debug enabled by default")
	}
	if cfg.ExternalClient != "" {
		t.Errorf("ExternalClient = %q, want empty", cfg.ExternalClient)
	}
	if cfg.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", cfg.ChunkSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ircat.yaml")
	content := "default_port: 6697\ndebug: true\nexternal_client: /usr/bin/telnet\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.DefaultPort != 6697 {
		t.Errorf("DefaultPort = %d, want 6697", cfg.DefaultPort)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.ExternalClient != "/usr/bin/telnet" {
		t.Errorf("ExternalClient = %q, want /usr/bin/telnet", cfg.ExternalClient)
	}
	// Fields the file omits keep their defaults.
	if cfg.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want default 1024", cfg.ChunkSize)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"port zero", "default_port: 0\n"},
		{"port too large", "default_port: 65536\n"},
		{"negative chunk", "chunk_size: -1\n"},
		{"bad grace", "shutdown_grace: soon\n"},
		{"malformed yaml", "default_port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ircat.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Errorf("LoadFile accepted %q", tt.content)
			}
		})
	}
}

func TestLoadHonorsEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ircat.yaml")
	if err := os.WriteFile(path, []byte("default_port: 7000\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultPort != 7000 {
		t.Errorf("DefaultPort = %d, want 7000", cfg.DefaultPort)
	}
}

func TestLoadWithoutEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultPort != DefaultPort {
		t.Errorf("DefaultPort = %d, want compiled default %d", cfg.DefaultPort, DefaultPort)
	}
}

func TestShutdownGraceDuration(t *testing.T) {
	cfg := Default()
	cfg.ShutdownGrace = "250ms"
	if got := cfg.ShutdownGraceDuration(); got != 250*time.Millisecond {
		t.Errorf("ShutdownGraceDuration() = %v, want 250ms", got)
	}
}
