package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/Harshal279/chatbot/internal/ai"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AIEnabled {
		t.Error("AI summaries should be off by default")
	}
	if cfg.AIModel != ai.DefaultModel || cfg.AIMaxTokens != 150 || cfg.AITimeout != 8*time.Second {
		t.Errorf("ai defaults = %q %d %s", cfg.AIModel, cfg.AIMaxTokens, cfg.AITimeout)
	}
	if cfg.ExportFormat != "txt" || cfg.ExportDir != "." {
		t.Errorf("export defaults = %q %q", cfg.ExportFormat, cfg.ExportDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg := DefaultConfig()
	cfg.AIEnabled = true
	cfg.AITimeout = 3 * time.Second
	cfg.ExportFormat = "md"

	if err := WriteConfig(fsys, "conf/proposal.yaml", cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	loaded, err := ReadConfig(fsys, "conf/proposal.yaml")
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "p.yaml", []byte("ai_model: llama-3.1-8b-instant\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig(fsys, "p.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AIModel != "llama-3.1-8b-instant" {
		t.Errorf("AIModel = %q", cfg.AIModel)
	}
	if cfg.AIMaxTokens != ai.DefaultMaxTokens || cfg.AIBaseURL != ai.DefaultBaseURL {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestReadConfigMalformed(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "bad.yaml", []byte("ai_max_tokens: [nope"), 0o644)
	if _, err := ReadConfig(fsys, "bad.yaml"); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, DefaultFile, []byte("ai_model: from-file\nexport_format: json\n"), 0o644)

	t.Setenv("PROPOSAL_AI_MODEL", "from-env")
	t.Setenv("PROPOSAL_AI_ENABLED", "true")
	t.Setenv("PROPOSAL_AI_TIMEOUT", "2s")

	cfg, err := Load(fsys, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AIModel != "from-env" {
		t.Errorf("AIModel = %q, want env value", cfg.AIModel)
	}
	if cfg.ExportFormat != "json" {
		t.Errorf("ExportFormat = %q, want file value", cfg.ExportFormat)
	}
	if !cfg.AIEnabled || cfg.AITimeout != 2*time.Second {
		t.Errorf("AIEnabled = %v, AITimeout = %s", cfg.AIEnabled, cfg.AITimeout)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AIModel != ai.DefaultModel {
		t.Errorf("AIModel = %q", cfg.AIModel)
	}
}

func TestLoadNamedFileMustExist(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "missing.yaml"); err == nil {
		t.Error("expected error for missing named config file")
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("PROPOSAL_AI_MAX_TOKENS", "lots")
	if _, err := Load(afero.NewMemMapFs(), ""); err == nil {
		t.Error("expected envconfig parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AIMaxTokens = 0
	cfg.AITimeout = -time.Second
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"ai_max_tokens", "ai_timeout"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
