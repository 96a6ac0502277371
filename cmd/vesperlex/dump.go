package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vesperlang/lex/internal/lexer"
)

// tokenRecord is the JSON shape of one emitted token.
type tokenRecord struct {
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Lexeme string `json:"lexeme"`
}

// drainTokens lexes buf to EOF (inclusive) and returns one record per
// token, including the final EOF.
func drainTokens(buf []byte, filename string) []tokenRecord {
	l := lexer.Init(buf, filename, lexer.DefaultRecoveryHandlers())
	var records []tokenRecord
	for {
		tok := l.Lex()
		lexeme := tok.Lexeme(buf)
		if tok.Kind == lexer.REGEXP_END && !lexer.ValidateRegexpOptions(lexeme) {
			pos := l.PositionAt(tok.Start)
			logger.Warn("duplicate regexp option letter", "file", filename, "pos", pos.String(), "lexeme", string(lexeme))
		}
		records = append(records, tokenRecord{
			Kind:   tok.Kind.String(),
			Start:  tok.Start,
			End:    tok.End,
			Lexeme: string(lexeme),
		})
		if tok.Kind == lexer.EOF {
			return records
		}
	}
}

// writeTokensText prints one "kind\tstart\tend\tlexeme" line per token.
func writeTokensText(w io.Writer, records []tokenRecord) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%q\n", r.Kind, r.Start, r.End, r.Lexeme); err != nil {
			return err
		}
	}
	return nil
}

// writeTokensJSON prints the records as a single JSON array.
func writeTokensJSON(w io.Writer, records []tokenRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// runID mints a correlation ID for one lex pass (or one repl session),
// attached to its summary slog line so repeated --watch re-lexes of the
// same file stay distinguishable in a piped log.
func runID() string {
	return uuid.NewString()
}

// logDuration logs how long a lex pass over a file took, tagged with the
// given run ID.
func logDuration(id, filename string, tokenCount int, start time.Time) {
	logger.Info("lexed file",
		"run_id", id,
		"file", filename,
		"tokens", tokenCount,
		"elapsed", time.Since(start).String(),
	)
}
