package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/pkg/config"
)

func TestNewLLMService_ModoDegradado(t *testing.T) {
	svc, closeFn := NewLLMService(context.Background(), config.LLMConfig{Provider: config.ProviderGemini}, nil)
	require.NotNil(t, closeFn)
	defer closeFn()

	assert.IsType(t, UnavailableService{}, svc)
	_, err := svc.GenerateJSON(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	_, err = svc.GenerateText(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestNewLLMService_ProveedorDesconocido(t *testing.T) {
	svc, _ := NewLLMService(context.Background(), config.LLMConfig{Provider: "openai"}, nil)
	assert.IsType(t, UnavailableService{}, svc)
}

func TestNewLLMService_Anthropic(t *testing.T) {
	svc, closeFn := NewLLMService(context.Background(), config.LLMConfig{
		Provider:        config.ProviderAnthropic,
		AnthropicAPIKey: "sk-test",
		AnthropicModel:  "claude-test",
	}, nil)
	defer closeFn()

	assert.IsType(t, &AnthropicService{}, svc)
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(` 1}`)}},
	}}}

	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, text)

	_, err = extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}})
	assert.Error(t, err)
}
