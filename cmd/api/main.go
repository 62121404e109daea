// Package main punto de entrada: servidor HTTP, servidor MCP por stdio y consulta única por CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "omie-pedidos-ia",
	Short:         "Consultas en lenguaje natural sobre pedidos de clientes en Omie",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
