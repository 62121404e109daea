package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/pkg/llmtext"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicMessages = "/v1/messages"
	anthropicVersion  = "2023-06-01"
	anthropicMaxToken = 1024

	anthropicJSONSystem = `Responda SOMENTE com um objeto JSON válido, sem markdown e sem texto fora do JSON.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
type AnthropicService struct {
	apiKey string
	model  string
	http   *resty.Client
	log    *logger.Logger
}

// AnthropicOption ajusta el adaptador (p. ej. en tests).
type AnthropicOption func(*AnthropicService)

// WithAnthropicBaseURL cambia el host de la API.
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(s *AnthropicService) { s.http.SetBaseURL(url) }
}

// WithAnthropicLogger asigna el logger del adaptador.
func WithAnthropicLogger(log *logger.Logger) AnthropicOption {
	return func(s *AnthropicService) { s.log = log.Child("provider", "anthropic") }
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string, opts ...AnthropicOption) *AnthropicService {
	s := &AnthropicService{
		apiKey: apiKey,
		model:  model,
		http: resty.New().
			SetBaseURL(anthropicBaseURL).
			// Timeout de red; el caso de uso impone además su context.WithTimeout.
			SetTimeout(60*time.Second).
			SetHeader("anthropic-version", anthropicVersion).
			SetHeader("content-type", "application/json"),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// GenerateText envía el prompt como único mensaje de usuario.
func (s *AnthropicService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.send(ctx, "", prompt)
}

// GenerateJSON añade un system prompt que exige JSON y extrae el objeto si Claude
// lo envuelve en texto adicional.
func (s *AnthropicService) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	text, err := s.send(ctx, anthropicJSONSystem, prompt)
	if err != nil {
		return "", err
	}
	if clean := extractJSON(text); clean != "" {
		return clean, nil
	}
	return text, nil
}

func (s *AnthropicService) send(ctx context.Context, system, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", s.apiKey).
		SetBody(anthropicRequest{
			Model:     s.model,
			MaxTokens: anthropicMaxToken,
			System:    system,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		Post(anthropicMessages)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}

	var anthResp anthropicResponse
	decodeErr := json.Unmarshal(resp.Body(), &anthResp)

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode() != http.StatusOK {
		if decodeErr == nil && anthResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", anthResp.Error.Type, anthResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if decodeErr != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", decodeErr)
	}

	var b strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	s.log.Trace().Int("chars", b.Len()).Msg("respuesta de Claude")
	return b.String(), nil
}

// extractJSON extrae el primer objeto JSON de un texto libre: primero quita un bloque
// markdown y, si aún no empieza con '{', busca el primer {...}.
func extractJSON(text string) string {
	text = llmtext.StripFence(text)
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
