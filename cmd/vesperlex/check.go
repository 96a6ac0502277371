package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vesperlang/lex/internal/lexer"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Exit 0 if a file's token stream is well-formed",
	Long: `check lexes a file to EOF and succeeds only if every opened
string, regexp, list, symbol, or embedded-expression mode was closed and
no INVALID token was produced along the way. Otherwise it prints the
first INVALID token, or reports an unterminated literal, and exits 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		buf, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		l := lexer.Init(buf, filename, lexer.DefaultRecoveryHandlers())
		for {
			tok := l.Lex()
			if tok.Kind == lexer.INVALID {
				pos := l.PositionAt(tok.Start)
				fmt.Printf("invalid token at %s: %q\n", pos, tok.Lexeme(buf))
				os.Exit(1)
			}
			if tok.Kind == lexer.EOF {
				break
			}
		}

		if !l.AtBaseMode() {
			fmt.Printf("%s: unterminated literal at EOF\n", filename)
			os.Exit(1)
		}

		fmt.Printf("%s: ok\n", filename)
		return nil
	},
}
