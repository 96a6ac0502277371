package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "vesperlex",
	Short: "Tokenize Vesper source files",
	Long: `vesperlex drives the streaming lexer over real files from the
command line: dump the token stream, watch a file for changes, run an
interactive tokenizer, or check a file for well-formedness.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(checkCmd)
}
