package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   `ask "<pergunta>"`,
	Short: "Responde una pregunta sobre pedidos y termina",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	p, err := bootstrap(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer p.close()

	answer := p.assistant.Answer(cmd.Context(), strings.Join(args, " "))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
	return err
}
