package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearMandalaEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MANDALA_HOME", "MANDALA_PROFILE_DIR", "MANDALA_PROFILE", "MANDALA_THEME", "MANDALA_WORD_WRAP", "MANDALA_DEMO_TASK"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	clearMandalaEnv(t)

	cfg := DefaultConfig()
	if cfg.Theme != "auto" {
		t.Errorf("expected Theme=auto, got %s", cfg.Theme)
	}
	if cfg.WordWrap != 80 {
		t.Errorf("expected WordWrap=80, got %d", cfg.WordWrap)
	}
	if cfg.DefaultProfile != "" {
		t.Errorf("expected empty DefaultProfile, got %s", cfg.DefaultProfile)
	}
	if !strings.HasSuffix(cfg.ProfileDir, filepath.Join(".mandala", "profiles")) {
		t.Errorf("unexpected ProfileDir: %s", cfg.ProfileDir)
	}
	if cfg.DemoTask == "" {
		t.Error("expected a default DemoTask")
	}
}

func TestMandalaHomeOverridesBase(t *testing.T) {
	clearMandalaEnv(t)
	home := t.TempDir()
	t.Setenv("MANDALA_HOME", home)

	if got, want := DefaultPath(), filepath.Join(home, "config.yaml"); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
	if got, want := DefaultConfig().ProfileDir, filepath.Join(home, "profiles"); got != want {
		t.Errorf("DefaultConfig().ProfileDir = %s, want %s", got, want)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearMandalaEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultProfile = "skeptic"
	cfg.Theme = "dark"
	cfg.WordWrap = 100

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultProfile != "skeptic" {
		t.Errorf("expected DefaultProfile=skeptic, got %s", loaded.DefaultProfile)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.WordWrap != 100 {
		t.Errorf("expected WordWrap=100, got %d", loaded.WordWrap)
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	clearMandalaEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "auto" {
		t.Errorf("expected default Theme=auto, got %s", cfg.Theme)
	}
}

func TestConfig_LoadPartialFileKeepsDefaults(t *testing.T) {
	clearMandalaEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: light\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected Theme=light, got %s", cfg.Theme)
	}
	if cfg.WordWrap != 80 {
		t.Errorf("expected default WordWrap=80, got %d", cfg.WordWrap)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearMandalaEnv(t)
	t.Setenv("MANDALA_PROFILE", "mentor")
	t.Setenv("MANDALA_WORD_WRAP", "120")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultProfile = "skeptic"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultProfile != "mentor" {
		t.Errorf("env should beat file: expected DefaultProfile=mentor, got %s", loaded.DefaultProfile)
	}
	if loaded.WordWrap != 120 {
		t.Errorf("expected WordWrap=120, got %d", loaded.WordWrap)
	}

	t.Run("env applies without a config file", func(t *testing.T) {
		t.Setenv("MANDALA_THEME", "dark")
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Theme != "dark" {
			t.Errorf("expected Theme=dark from env, got %s", cfg.Theme)
		}
	})
}

func TestConfig_BadEnvValue(t *testing.T) {
	clearMandalaEnv(t)
	t.Setenv("MANDALA_WORD_WRAP", "not-a-number")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a non-numeric MANDALA_WORD_WRAP")
	}
}

func TestConfig_BadYAML(t *testing.T) {
	clearMandalaEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}

	cfg.Theme = "solarized"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unknown theme")
	}

	cfg.Theme = "dark"
	cfg.WordWrap = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a negative word_wrap")
	}
}
