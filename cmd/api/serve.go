package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpRouter "github.com/jhoicas/omie-pedidos-ia/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia la API HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	p, err := bootstrap(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	defer p.close()
	log := p.log

	app := httpRouter.NewApp(p.cfg.App.Name, log, httpRouter.RouterDeps{
		Orders:    p.orders,
		Assistant: p.assistant,
	})

	go func() {
		if err := app.Listen(p.cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
