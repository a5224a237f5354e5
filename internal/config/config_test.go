package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/boxclip/internal/clipper"
)

// clearEnv unsets every key Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "DATA_DIR", "PROFILES_PATH", "PASSWORD_MODE", "UI_PASSWORD",
		"MIN_WIDTH", "MIN_HEIGHT", "HANDLE_RADIUS", "ASPECT_RATIO",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

// chdirTemp runs the test from an empty directory so ./data/.env is absent.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

// TestLoad_Defaults verifies defaults when only the password is set.
func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("UI_PASSWORD", "pw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.UIPassword != "pw" || !cfg.PasswordMode {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ProfilesPath != filepath.Join(defaultDataDir, "profiles.yaml") {
		t.Fatalf("unexpected profiles path %q", cfg.ProfilesPath)
	}
	if cfg.Engine != clipper.DefaultConfig() {
		t.Fatalf("expected default engine config, got %+v", cfg.Engine)
	}
}

// TestLoad_EngineOverrides verifies engine keys are parsed as numbers.
func TestLoad_EngineOverrides(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("PASSWORD_MODE", "off")
	t.Setenv("MIN_WIDTH", "80")
	t.Setenv("MIN_HEIGHT", "40.5")
	t.Setenv("HANDLE_RADIUS", "16")
	t.Setenv("ASPECT_RATIO", "1.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	e := cfg.Engine
	if e.MinWidth != 80 || e.MinHeight != 40.5 || e.HandleRadius != 16 || e.AspectRatio != 1.5 {
		t.Fatalf("unexpected engine config %+v", e)
	}
}

// TestLoad_RejectsBadValues verifies malformed and invalid engine values fail.
func TestLoad_RejectsBadValues(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("PASSWORD_MODE", "false")

	t.Setenv("MIN_WIDTH", "wide")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}

	t.Setenv("MIN_WIDTH", "")
	t.Setenv("ASPECT_RATIO", "-2")
	if _, err := Load(); !errors.Is(err, clipper.ErrInvalidRatio) {
		t.Fatalf("expected ErrInvalidRatio, got %v", err)
	}
}

// TestLoad_RequiresPassword verifies password mode needs UI_PASSWORD.
func TestLoad_RequiresPassword(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing password error")
	}
}

// TestLoad_EnvFile verifies ./data/.env supplies values without overriding the environment.
func TestLoad_EnvFile(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	env := "# comment\nexport UI_PASSWORD='secret'\nLISTEN_ADDR=0.0.0.0:1\nHANDLE_RADIUS=24\n"
	if err := os.WriteFile(filepath.Join(dir, "data", ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UIPassword != "secret" || cfg.ListenAddr != "127.0.0.1:9000" || cfg.Engine.HandleRadius != 24 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

// TestParseEnvLine verifies comments, exports and quotes.
func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"A=1", "A", "1", true},
		{"export B = \"two\"", "B", "two", true},
		{"# C=3", "", "", false},
		{"novalue", "", "", false},
		{"=x", "", "", false},
	}
	for _, tc := range cases {
		key, value, ok := parseEnvLine(tc.line)
		if key != tc.key || value != tc.value || ok != tc.ok {
			t.Fatalf("parseEnvLine(%q) = %q,%q,%v", tc.line, key, value, ok)
		}
	}
}
