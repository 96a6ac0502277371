package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines typed at an interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		runREPL()
		return nil
	},
}

func runREPL() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	id := runID()
	logger.Info("repl started", "run_id", id)

	for {
		line, err := state.Prompt("vesperlex> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		if line == "" {
			continue
		}
		state.AppendHistory(line)

		buf := []byte(line + "\n")
		records := drainTokens(buf, "<repl>")
		if err := writeTokensText(os.Stdout, records); err != nil {
			fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		}
	}
}
