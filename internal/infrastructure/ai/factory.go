// Package ai contiene los adaptadores de modelos de lenguaje (Gemini, Anthropic) y el
// modo degradado usado cuando ninguno puede inicializarse.
package ai

import (
	"context"
	"fmt"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/pkg/config"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// NewLLMService construye el adaptador del proveedor configurado. Si no puede
// inicializarse, registra el error y devuelve UnavailableService: el proceso sigue
// en pie y la búsqueda de pedidos no depende del modelo.
// La función devuelta libera los recursos del adaptador; nunca es nil.
func NewLLMService(ctx context.Context, cfg config.LLMConfig, log *logger.Logger) (ports.LLMService, func() error) {
	if log == nil {
		log = logger.Nop()
	}
	noop := func() error { return nil }

	svc, closeFn, err := newProvider(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Str("provider", cfg.Provider).Msg("no se pudo inicializar el modelo de IA; modo degradado")
		return UnavailableService{}, noop
	}
	log.Info().Str("provider", cfg.Provider).Msg("modelo de IA inicializado")
	return svc, closeFn
}

func newProvider(ctx context.Context, cfg config.LLMConfig, log *logger.Logger) (ports.LLMService, func() error, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		g, err := NewGeminiService(ctx, cfg.GoogleAPIKey, cfg.GeminiModel, log)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, WithAnthropicLogger(log)), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
