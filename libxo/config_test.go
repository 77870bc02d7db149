package libxo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libxo.yaml")
	body := "style: json\npretty: true\nindent: 2\nwarn: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, ok := loadYAMLConfigFile(path)
	if !ok {
		t.Fatal("expected config to load")
	}
	h := New(Text, 0)
	cfg.applyTo(h)
	if h.Style() != JSON {
		t.Errorf("expected JSON style, got %v", h.Style())
	}
	if !h.Flags().has(Pretty) || !h.Flags().has(Warn) {
		t.Errorf("expected PRETTY and WARN set, got %v", h.Flags())
	}
	if h.indentBy != 2 {
		t.Errorf("expected indentBy 2, got %d", h.indentBy)
	}
}

func TestLoadYAMLConfigFile_MissingFileIsNotFatal(t *testing.T) {
	if _, ok := loadYAMLConfigFile("/nonexistent/path/libxo.yaml"); ok {
		t.Error("expected a missing file to report not-found, not an error")
	}
}

func TestLoadYAMLConfigFromEnv_UnsetIsNotFound(t *testing.T) {
	t.Setenv(envConfigVar, "")
	if _, ok := loadYAMLConfigFromEnv(); ok {
		t.Error("expected unset LIBXO_CONFIG to report not-found")
	}
}
