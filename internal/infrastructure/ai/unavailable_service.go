package ai

import (
	"context"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
)

var _ ports.LLMService = UnavailableService{}

// UnavailableService modo degradado: todas las llamadas fallan con domain.ErrLLMUnavailable.
type UnavailableService struct{}

func (UnavailableService) GenerateText(context.Context, string) (string, error) {
	return "", domain.ErrLLMUnavailable
}

func (UnavailableService) GenerateJSON(context.Context, string) (string, error) {
	return "", domain.ErrLLMUnavailable
}
