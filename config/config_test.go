package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HF_TOKEN", "WEBGEN_LLM_API_KEY", "WEBGEN_LLM_PROVIDER", "WEBGEN_SERVER_ADDR", "WEBGEN_LLM_MAX_TOKENS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// keep a stray .env in the working directory out of the test
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Provider != ProviderHuggingFace || cfg.LLM.MaxTokens != 2048 || cfg.LLM.Temperature != 0.7 {
		t.Fatalf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 120*time.Second || cfg.ServerAddr != ":8080" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !errors.Is(cfg.Validate(), ErrMissingToken) {
		t.Fatalf("validate = %v", cfg.Validate())
	}
}

func TestLoadHFToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("HF_TOKEN", "hf_abc")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.APIKey != "hf_abc" {
		t.Fatalf("api key = %q", cfg.LLM.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	if err := os.WriteFile(".env", []byte("HF_TOKEN=hf_from_dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("HF_TOKEN") })
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.APIKey != "hf_from_dotenv" {
		t.Fatalf("api key = %q", cfg.LLM.APIKey)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `llm:
  provider: Mock
  max_tokens: 1024
  temperature: 0.2
  timeout: 30s
server_addr: ":9000"
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WEBGEN_SERVER_ADDR", ":7000")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Provider != ProviderMock || cfg.LLM.MaxTokens != 1024 || cfg.LLM.Temperature != 0.2 {
		t.Fatalf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.ServerAddr != ":7000" {
		t.Fatalf("server addr = %q", cfg.ServerAddr)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider needs no token: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate(t *testing.T) {
	base := Config{LLM: LLMConfig{Provider: ProviderOpenAI, APIKey: "k", MaxTokens: 10, Temperature: 1}}
	if err := base.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := base
	bad.LLM.Provider = "bedrock"
	if bad.Validate() == nil {
		t.Error("unknown provider accepted")
	}
	bad = base
	bad.LLM.MaxTokens = 0
	if bad.Validate() == nil {
		t.Error("zero max tokens accepted")
	}
	bad = base
	bad.LLM.Temperature = 3
	if bad.Validate() == nil {
		t.Error("temperature out of range accepted")
	}
}
