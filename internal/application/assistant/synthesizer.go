package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// Synthesizer redacta la respuesta final a partir de los pedidos encontrados.
type Synthesizer struct {
	llm     ports.LLMService
	timeout time.Duration
	log     *logger.Logger
}

// NewSynthesizer construye el redactor. timeout <= 0 usa DefaultLLMTimeout.
func NewSynthesizer(llm ports.LLMService, timeout time.Duration, log *logger.Logger) *Synthesizer {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Synthesizer{llm: llm, timeout: timeout, log: log.Child("component", "synthesizer")}
}

// Synthesize devuelve el texto del modelo tal cual. Cualquier fallo se reporta como
// domain.ErrAnswerGeneration.
func (s *Synthesizer) Synthesize(ctx context.Context, question, subQuestion string, orders []entity.OrderSummary) (string, error) {
	prompt, err := buildAnswerPrompt(question, subQuestion, orders)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAnswerGeneration, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo la generación de la respuesta final")
		return "", fmt.Errorf("%w: %w", domain.ErrAnswerGeneration, err)
	}
	s.log.Debug().Int("orders", len(orders)).Str("answer", answer).Msg("respuesta final generada")
	return answer, nil
}
