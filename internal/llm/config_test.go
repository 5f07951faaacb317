package llm

import (
	"testing"
	"time"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, b := range envBindings {
		t.Setenv(b.name, "")
	}
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "openrouter"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("AIAWARE_LLM_PROVIDER", "openai")
	t.Setenv("AIAWARE_OPENAI_API_KEY", "sk-x")
	t.Setenv("AIAWARE_OPENAI_BASE_URL", "https://gateway.example/v1")
	t.Setenv("AIAWARE_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-x" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.OpenAI.BaseURL != "https://gateway.example/v1" {
		t.Errorf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want default", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestConfigFromEnv_BadTimeoutKeepsDefault(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("AIAWARE_LLM_TIMEOUT", "soon")
	if got := ConfigFromEnv().Timeout; got != DefaultConfig().Timeout {
		t.Errorf("Timeout = %v, want default", got)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with empty env")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENAI_API_KEY", "o")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o" {
		t.Fatalf("expected openai to win over anthropic, got %+v", cfg)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("explicit wins", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		t.Setenv("AIAWARE_LLM_PROVIDER", "mock")
		cfg, err := ResolveConfig()
		if err != nil || cfg.Provider != ProviderMock {
			t.Fatalf("got %+v, %v", cfg, err)
		}
	})
	t.Run("explicit but invalid", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("AIAWARE_LLM_PROVIDER", "anthropic")
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected missing key error")
		}
	})
	t.Run("discovered", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		cfg, err := ResolveConfig()
		if err != nil || cfg.Provider != ProviderGemini {
			t.Fatalf("got %+v, %v", cfg, err)
		}
	})
}
