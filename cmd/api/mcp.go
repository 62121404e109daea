package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/omie-pedidos-ia/internal/interfaces/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Sirve las herramientas MCP por stdio",
	Long:  "Expone encontrar_pedidos_cliente y responder_pergunta_sobre_pedidos por stdin/stdout. Los logs van a stderr.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	// stdout transporta el protocolo.
	p, err := bootstrap(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer p.close()

	s := mcp.NewServer("Servidor de Integração Omie", version, mcp.NewTools(p.orders, p.assistant, p.log))
	p.log.Info().Msg("servidor MCP escuchando en stdio")
	if err := mcp.Serve(s); err != nil {
		p.log.Error().Err(err).Msg("servidor MCP finalizado")
		return err
	}
	return nil
}
