// Package mcp expone las dos operaciones de pedidos como herramientas MCP sobre stdio.
package mcp

import (
	"context"
	"encoding/json"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/orders"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// Nombres de las herramientas publicadas.
const (
	ToolFindOrders = "encontrar_pedidos_cliente"
	ToolAsk        = "responder_pergunta_sobre_pedidos"
)

// OrderSearcher caso de uso de búsqueda de pedidos.
type OrderSearcher interface {
	Execute(ctx context.Context, q entity.CustomerQuery) ([]entity.OrderSummary, error)
}

// QuestionAnswerer pipeline de preguntas en lenguaje natural.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string) string
}

// Tools agrupa los handlers de las herramientas.
type Tools struct {
	orders    OrderSearcher
	assistant QuestionAnswerer
	log       *logger.Logger
}

// NewTools construye los handlers.
func NewTools(o OrderSearcher, a QuestionAnswerer, log *logger.Logger) *Tools {
	if log == nil {
		log = logger.Nop()
	}
	return &Tools{orders: o, assistant: a, log: log.Child("component", "mcp")}
}

// NewServer crea el servidor MCP con las dos herramientas registradas.
func NewServer(name, version string, t *Tools) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcpgo.NewTool(ToolFindOrders,
		mcpgo.WithDescription("Encontra um cliente utilizando CNPJ/CPF, Nome Fantasia ou Cidade, e então busca "+
			"e retorna detalhes sobre seus últimos 3 pedidos de venda da API Omie. "+
			"Requer pelo menos um parâmetro de busca."),
		mcpgo.WithString("cnpj_cpf", mcpgo.Description("CNPJ ou CPF do cliente.")),
		mcpgo.WithString("nome_fantasia", mcpgo.Description("Nome fantasia do cliente.")),
		mcpgo.WithString("cidade", mcpgo.Description("Cidade do cliente.")),
	), t.FindOrders)

	s.AddTool(mcpgo.NewTool(ToolAsk,
		mcpgo.WithDescription("Interpreta uma pergunta em linguagem natural, busca os pedidos do cliente "+
			"identificado e responde usando um modelo de IA."),
		mcpgo.WithString("pergunta_usuario",
			mcpgo.Description("A pergunta do usuário em linguagem natural sobre pedidos de um cliente."),
			mcpgo.Required(),
		),
	), t.Ask)

	return s
}

// Serve atiende el protocolo MCP por stdin/stdout hasta que se cierre la entrada.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// FindOrders handler de encontrar_pedidos_cliente. Los fallos de dominio vuelven como
// resultado de error con el mensaje para el usuario, nunca como error de protocolo.
func (t *Tools) FindOrders(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	q := entity.CustomerQuery{
		TaxID:       req.GetString("cnpj_cpf", ""),
		DisplayName: req.GetString("nome_fantasia", ""),
		City:        req.GetString("cidade", ""),
	}

	found, err := t.orders.Execute(ctx, q)
	if err != nil {
		return mcpgo.NewToolResultError(orders.Message(err)), nil
	}

	out, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		t.log.Error().Err(err).Msg("serializar pedidos")
		return mcpgo.NewToolResultError("Erro inesperado ao serializar os pedidos."), nil
	}
	return mcpgo.NewToolResultText(string(out)), nil
}

// Ask handler de responder_pergunta_sobre_pedidos; siempre devuelve texto.
func (t *Tools) Ask(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	question, err := req.RequireString("pergunta_usuario")
	if err != nil {
		return mcpgo.NewToolResultError("Erro: o parâmetro pergunta_usuario é obrigatório."), nil
	}
	return mcpgo.NewToolResultText(t.assistant.Answer(ctx, question)), nil
}
