package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/dto"
)

// QuestionAnswerer pipeline de preguntas (assistant.Orchestrator).
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string) string
}

// AssistantHandler maneja las preguntas en lenguaje natural sobre pedidos.
type AssistantHandler struct {
	assistant QuestionAnswerer
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(a QuestionAnswerer) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

// Ask POST /api/assistant/ask
// Los fallos del pipeline llegan como texto en "resposta" con 200.
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(dto.AskResponse{Answer: h.assistant.Answer(c.UserContext(), in.Question)})
}
