package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper(map[string]any{
		"OMIE_APP_KEY":    "key",
		"OMIE_APP_SECRET": "secret",
		"GOOGLE_API_KEY":  "google",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "https://app.omie.com.br/api/v1", cfg.Omie.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Omie.Timeout)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_FaltanCredencialesOmie(t *testing.T) {
	_, err := FromViper(newViper(map[string]any{"GOOGLE_API_KEY": "google"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AppKey")
	assert.Contains(t, err.Error(), "AppSecret")
}

func TestFromViper_GeminiRequiereAPIKey(t *testing.T) {
	_, err := FromViper(newViper(map[string]any{
		"OMIE_APP_KEY":    "key",
		"OMIE_APP_SECRET": "secret",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GoogleAPIKey")
}

func TestFromViper_AnthropicNoRequiereGoogle(t *testing.T) {
	cfg, err := FromViper(newViper(map[string]any{
		"OMIE_APP_KEY":      "key",
		"OMIE_APP_SECRET":   "secret",
		"LLM_PROVIDER":      "Anthropic",
		"ANTHROPIC_API_KEY": "sk-ant",
	}))
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "claude-3-5-haiku-20241022", cfg.LLM.AnthropicModel)
}

func TestFromViper_ProveedorDesconocido(t *testing.T) {
	_, err := FromViper(newViper(map[string]any{
		"OMIE_APP_KEY":    "key",
		"OMIE_APP_SECRET": "secret",
		"GOOGLE_API_KEY":  "google",
		"LLM_PROVIDER":    "ollama",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Provider")
}

func TestFromViper_ValoresPersonalizados(t *testing.T) {
	cfg, err := FromViper(newViper(map[string]any{
		"OMIE_APP_KEY":      "key",
		"OMIE_APP_SECRET":   "secret",
		"GOOGLE_API_KEY":    "google",
		"OMIE_API_BASE_URL": "http://localhost:9999/api/v1/",
		"OMIE_TIMEOUT":      "5s",
		"HTTP_PORT":         "9090",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api/v1", cfg.Omie.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Omie.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}
