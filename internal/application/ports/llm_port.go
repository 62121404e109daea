package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// La aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateText envía el prompt y devuelve el texto crudo del modelo.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateJSON igual que GenerateText, pero pide al proveedor salida JSON cuando
	// lo soporta. El texto puede venir igualmente envuelto en un bloque markdown.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
