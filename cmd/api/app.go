package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/assistant"
	"github.com/jhoicas/omie-pedidos-ia/internal/application/orders"
	infraai "github.com/jhoicas/omie-pedidos-ia/internal/infrastructure/ai"
	"github.com/jhoicas/omie-pedidos-ia/internal/infrastructure/omie"
	"github.com/jhoicas/omie-pedidos-ia/pkg/config"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// version publicada por el servidor MCP.
const version = "1.0.0"

// pipeline casos de uso ya cableados.
type pipeline struct {
	cfg       *config.Config
	log       *logger.Logger
	orders    *orders.FindCustomerOrders
	assistant *assistant.Orchestrator
	close     func() error
}

// bootstrap carga la configuración (falla rápido si faltan claves) y arma el pipeline.
// logOut es el destino de los logs: stdout para HTTP, stderr para MCP y CLI.
func bootstrap(ctx context.Context, logOut io.Writer) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   logOut,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("iniciando aplicación")

	directory := omie.NewDirectory(omie.NewClient(cfg.Omie, log))
	findOrders := orders.NewFindCustomerOrders(directory, directory, log)

	llm, closeLLM := infraai.NewLLMService(ctx, cfg.LLM, log)
	orchestrator := assistant.NewOrchestrator(llm, findOrders, cfg.LLM.Timeout, log)

	return &pipeline{
		cfg:       cfg,
		log:       log,
		orders:    findOrders,
		assistant: orchestrator,
		close:     closeLLM,
	}, nil
}
