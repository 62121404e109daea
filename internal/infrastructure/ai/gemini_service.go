package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// geminiTemperature baja para respuestas más deterministas.
const geminiTemperature = 0.2

// GeminiService adaptador que implementa LLMService con el SDK de Google Gemini.
// El cliente del SDK es seguro para uso concurrente.
type GeminiService struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
func NewGeminiService(ctx context.Context, apiKey, model string, log *logger.Logger) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GOOGLE_API_KEY no configurado")
	}
	if log == nil {
		log = logger.Nop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model, log: log.Child("provider", "gemini")}, nil
}

// GenerateText devuelve el texto libre del modelo.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, false)
}

// GenerateJSON pide response_mime_type=application/json.
func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, true)
}

func (s *GeminiService) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(geminiTemperature)
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini generate: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	s.log.Trace().Bool("json", jsonMode).Int("chars", len(text)).Msg("respuesta de Gemini")
	return text, nil
}

// Close libera el cliente del SDK.
func (s *GeminiService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// extractText concatena las partes de texto del primer candidato.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió candidato sin contenido")
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta sin texto")
	}
	return b.String(), nil
}
