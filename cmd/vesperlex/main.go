// Command vesperlex drives the lexer package from the outside: dump a
// file's token stream, watch a file and re-lex it on save, run an
// interactive line-by-line tokenizer, or check a file for well-formedness.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
